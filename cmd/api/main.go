package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "sacco-loan-service/internal/adapter/http"
	"sacco-loan-service/internal/adapter/middleware"
	"sacco-loan-service/internal/adapter/repository/mysql"
	"sacco-loan-service/internal/config"
	"sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/internal/domain/ledger"
	"sacco-loan-service/internal/domain/loanrequest"
	"sacco-loan-service/internal/domain/member"
	"sacco-loan-service/internal/domain/memberloan"
	"sacco-loan-service/internal/infrastructure/cache"
	"sacco-loan-service/internal/infrastructure/db"
	"sacco-loan-service/internal/usecase/approval"
	"sacco-loan-service/internal/usecase/distribution"
	"sacco-loan-service/internal/usecase/penalty"
	"sacco-loan-service/internal/usecase/request"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if cfg.AutoMigrate {
		if err := gdb.AutoMigrate(
			&group.Group{},
			&member.Member{},
			&loanrequest.GroupLoanRequest{},
			&loanrequest.MemberAllocationRequest{},
			&grouploan.GroupLoan{},
			&memberloan.MemberLoan{},
			&ledger.ProcessingFeeEntry{},
			&ledger.InterestEntry{},
			&ledger.PenaltyEntry{},
			&ledger.PenaltyRun{},
		); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	uow := mysql.NewGormUoW(gdb)
	requests := mysql.NewLoanRequestRepository(gdb)

	requestUC := request.NewUsecase(requests, uow)
	approvalUC := approval.NewUsecase(requests, uow)
	distributionUC := distribution.NewUsecase(uow)
	penaltyUC := penalty.NewUsecase(uow)

	h := httpadp.NewHandler()
	requestH := httpadp.NewRequestHandler(requestUC)
	approvalH := httpadp.NewApprovalHandler(approvalUC)
	functionH := httpadp.NewFunctionHandler(distributionUC, penaltyUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/loan-requests/:request_id", requestH.GetLoanRequest)
	e.POST("/groups/:group_id/loan-requests", requestH.CreateLoanRequest, idemp)
	e.POST("/loan-requests/:request_id/approve", approvalH.ApproveLoanRequest, idemp)
	e.POST("/loan-requests/:request_id/reject", approvalH.RejectLoanRequest, idemp)
	e.POST("/functions/finalize-distribution", functionH.FinalizeDistribution, idemp)
	e.POST("/functions/apply-weekly-penalties", functionH.ApplyWeeklyPenalties, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
