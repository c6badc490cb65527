package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "credit-approval/internal/adapter/http"
	"credit-approval/internal/adapter/middleware"
	"credit-approval/internal/adapter/repository/mysql"
	"credit-approval/internal/config"
	customerDomain "credit-approval/internal/domain/customer"
	loanDomain "credit-approval/internal/domain/loan"
	"credit-approval/internal/infrastructure/cache"
	"credit-approval/internal/infrastructure/db"
	customerUC "credit-approval/internal/usecase/customer"
	"credit-approval/internal/usecase/eligibility"
	loanUC "credit-approval/internal/usecase/loan"
	"credit-approval/internal/usecase/scoring"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&customerDomain.Customer{}, &loanDomain.Loan{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	scorer := scoring.NewUsecase(customers, loans)
	elig := eligibility.NewUsecase(customers, loans, scorer)

	h := httpadp.NewHandler()
	custHandler := httpadp.NewCustomerHandler(customerUC.NewUsecase(customers))
	eligHandler := httpadp.NewEligibilityHandler(elig)
	loanHandler := httpadp.NewLoanHandler(loanUC.NewUsecase(elig, customers, loans, txm))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.GET("/", h.Info)
	e.POST("/register", custHandler.Register)
	e.POST("/check-eligibility", eligHandler.CheckEligibility)
	e.POST("/create-loan", loanHandler.CreateLoan, idemp)
	e.GET("/view-loan/:loan_id", loanHandler.GetLoan)
	e.GET("/view-loans/:customer_id", loanHandler.ListCustomerLoans)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
