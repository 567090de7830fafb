package mysql

import (
	"context"

	"gorm.io/gorm"

	requestDomain "sacco-loan-service/internal/domain/loanrequest"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, req *requestDomain.GroupLoanRequest, allocs []requestDomain.MemberAllocationRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return err
	}
	for i := range allocs {
		allocs[i].LoanRequestID = req.ID
	}
	if len(allocs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&allocs).Error
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.GroupLoanRequest, error) {
	var out requestDomain.GroupLoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, requestDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.GroupLoanRequest, error) {
	var out requestDomain.GroupLoanRequest
	res := forUpdate(r.db.WithContext(ctx)).
		Where("request_id = ?", requestID).
		First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, requestDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

// ListAllocations preserves submission order; member loans are created in
// this same order at approval time.
func (r *LoanRequestRepository) ListAllocations(ctx context.Context, loanRequestID uint64) ([]requestDomain.MemberAllocationRequest, error) {
	var out []requestDomain.MemberAllocationRequest
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) Save(ctx context.Context, req *requestDomain.GroupLoanRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *LoanRequestRepository) UpdateAllocationStatuses(ctx context.Context, loanRequestID uint64, status requestDomain.AllocationStatus) error {
	return r.db.WithContext(ctx).
		Model(&requestDomain.MemberAllocationRequest{}).
		Where("loan_request_id = ?", loanRequestID).
		Update("status", status).Error
}
