package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
	"github.com/polkiloo/foodmarket/internal/pkg/receipt"
)

// PurchaseUseCase buys dishes with the caller's balance.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	renderer  receipt.Renderer
	logger    *zap.Logger
	newID     func() uuid.UUID
}

// NewPurchaseUseCase constructs PurchaseUseCase.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, renderer receipt.Renderer, logger *zap.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, renderer: renderer, logger: logger.Named("purchases"), newID: uuid.New}
}

// Purchase validates the request and settles it atomically.
func (u *PurchaseUseCase) Purchase(ctx context.Context, userID int64, lines []model.PurchaseLine) (*model.Receipt, error) {
	if err := model.ValidateLines(lines); err != nil {
		return nil, err
	}

	rcpt, err := u.purchases.Purchase(ctx, userID, u.newID(), lines)
	if err != nil {
		return nil, err
	}
	u.logger.Info("purchase completed",
		zap.Int64("user_id", userID),
		zap.Stringer("receipt_id", rcpt.ID),
		zap.Int64("total", rcpt.Total),
		zap.Int("units", len(rcpt.Items)),
	)
	return rcpt, nil
}

// History returns every purchased unit of the user, newest first.
func (u *PurchaseUseCase) History(ctx context.Context, userID int64) ([]model.Purchase, error) {
	return u.purchases.ListByUser(ctx, userID)
}

// ReceiptQR renders a receipt of the user as a PNG QR code.
func (u *PurchaseUseCase) ReceiptQR(ctx context.Context, userID int64, receiptID uuid.UUID) ([]byte, error) {
	rcpt, err := u.purchases.GetReceipt(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(rcpt)
}
