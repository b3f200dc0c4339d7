package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "peerlend-backend/internal/adapter/http"
	appmw "peerlend-backend/internal/adapter/middleware"
	"peerlend-backend/internal/adapter/repository/mysql"
	"peerlend-backend/internal/config"
	"peerlend-backend/internal/infrastructure/cache"
	"peerlend-backend/internal/infrastructure/db"
	"peerlend-backend/internal/usecase/analytics"
	"peerlend-backend/internal/usecase/approval"
	"peerlend-backend/internal/usecase/loan"
	"peerlend-backend/internal/usecase/message"
	"peerlend-backend/internal/usecase/offer"
	"peerlend-backend/internal/usecase/payment"
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
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	offers := mysql.NewOfferRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	messages := mysql.NewMessageRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	offerH := httpadp.NewOfferHandler(offer.NewUsecase(offers, guow))
	loanH := httpadp.NewLoanHandler(loan.NewUsecase(loans, offers))
	approvalH := httpadp.NewApprovalHandler(approval.NewUsecase(guow))
	paymentH := httpadp.NewPaymentHandler(payment.NewUsecase(payments, guow))
	messageH := httpadp.NewMessageHandler(message.NewUsecase(messages, loans))
	analyticsH := httpadp.NewAnalyticsHandler(analytics.NewUsecase(loans))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/offers", offerH.CreateOffer, idem)
	e.PATCH("/offers/:offer_id/deactivate", offerH.DeactivateOffer, idem)
	e.GET("/offers", offerH.ListActiveOffers)

	e.POST("/loans", loanH.ApplyForLoan, idem)
	e.GET("/loans", loanH.GetLoansForUser)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.PATCH("/loans/:loan_id/approve", approvalH.ApproveLoan, idem)
	e.PATCH("/loans/:loan_id/reject", approvalH.RejectLoan, idem)

	e.POST("/loans/:loan_id/payments", paymentH.RecordPayment, idem)
	e.GET("/loans/:loan_id/payments", paymentH.GetPaymentsForLoan)

	e.POST("/loans/:loan_id/messages", messageH.PostMessage, idem)
	e.GET("/loans/:loan_id/messages", messageH.GetMessagesForLoan)

	e.GET("/analytics/portfolio", analyticsH.Portfolio)
	e.GET("/analytics/lenders/:lender_id", analyticsH.LenderSummary)
	e.GET("/analytics/borrowers/:borrower_id", analyticsH.BorrowerSummary)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
