package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"globalpay_gateway/internal/domain/entities"
	mock_interfaces "globalpay_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mock_interfaces.MockITransactionRepository, gateway *mock_interfaces.MockIPaymentGateway) *PaymentUseCase {
	uc := NewPaymentUseCase(repo, gateway)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "tx-1" }
	return uc
}

func approvedResult() *entities.GatewayResult {
	return &entities.GatewayResult{
		Success:       true,
		Kind:          entities.ResultApproved,
		Message:       "Transaction approved",
		Authorization: "PN-1",
		AVSResult:     "Y",
		CVVResult:     "M",
		Response:      entities.ProviderResponse{"Result": "0", "PNRef": "PN-1"},
	}
}

func TestPaymentUseCase_GatewayNotConfigured(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil)
	ctx := context.Background()

	if _, err := uc.Purchase(ctx, 100, &entities.CreditCard{Number: "4111"}, entities.ChargeOptions{}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("purchase: expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.Refund(ctx, 100, "PN-1", entities.ChargeOptions{}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("refund: expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.RepeatSale(ctx, 100, "PN-1", entities.ChargeOptions{}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("repeat sale: expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
	if _, err := uc.Recurring(ctx, "PN-1", entities.ChargeOptions{}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
		t.Fatalf("recurring: expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
	if info := uc.GatewayInfo(); info.DisplayName != "" {
		t.Fatalf("expected empty info, got %+v", info)
	}
}

func TestPaymentUseCase_Purchase(t *testing.T) {
	t.Run("approved charge is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(repo, gateway)

		card := &entities.CreditCard{Number: "4111111111111111", Month: 9, Year: 2027}
		gateway.EXPECT().Purchase(gomock.Any(), int64(1000), card, gomock.Any()).Return(approvedResult(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.ID != "tx-1" || tx.Type != entities.TransactionTypeSale {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if tx.Amount == nil || *tx.Amount != 1000 {
					t.Fatalf("expected amount 1000, got %v", tx.Amount)
				}
				if tx.Authorization != "PN-1" || tx.Reference != "" {
					t.Fatalf("unexpected authorization/reference: %+v", tx)
				}
				if !tx.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected created_at %v", tx.CreatedAt)
				}
				if tx.Response["PNRef"] != "PN-1" {
					t.Fatalf("response not carried: %+v", tx.Response)
				}
				return tx, nil
			},
		)

		tx, err := uc.Purchase(context.Background(), 1000, card, entities.ChargeOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.Success || tx.Kind != entities.ResultApproved || tx.AVSResult != "Y" || tx.CVVResult != "M" {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("stored customer reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(repo, gateway)

		opts := entities.ChargeOptions{CustomerReference: "CUST-9"}
		gateway.EXPECT().Purchase(gomock.Any(), int64(500), nil, opts).Return(approvedResult(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				return tx, nil
			},
		)

		tx, err := uc.Purchase(context.Background(), 500, nil, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Reference != "CUST-9" {
			t.Fatalf("expected reference CUST-9, got %q", tx.Reference)
		}
	})

	t.Run("declined charge is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(repo, gateway)

		declined := &entities.GatewayResult{Kind: entities.ResultDeclined, Message: "Invalid Account Number"}
		gateway.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(declined, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				return tx, nil
			},
		)

		tx, err := uc.Purchase(context.Background(), 1000, &entities.CreditCard{Number: "4000"}, entities.ChargeOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Success || tx.Message != "Invalid Account Number" {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("gateway validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(repo, gateway)

		gateway.EXPECT().Purchase(gomock.Any(), gomock.Any(), nil, gomock.Any()).Return(nil, entities.ErrMissingPaymentSource)

		_, err := uc.Purchase(context.Background(), 1000, nil, entities.ChargeOptions{})
		if !errors.Is(err, entities.ErrMissingPaymentSource) {
			t.Fatalf("expected ErrMissingPaymentSource, got %v", err)
		}
	})

	t.Run("audit write failure still returns result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(repo, gateway)

		gateway.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedResult(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("db-create"))

		tx, err := uc.Purchase(context.Background(), 1000, &entities.CreditCard{Number: "4111"}, entities.ChargeOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID != "tx-1" || !tx.Success {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("no repository configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway)

		gateway.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedResult(), nil)

		tx, err := uc.Purchase(context.Background(), 1000, &entities.CreditCard{Number: "4111"}, entities.ChargeOptions{})
		if err != nil || tx.ID == "" {
			t.Fatalf("unexpected result err=%v tx=%+v", err, tx)
		}
	})
}

func TestPaymentUseCase_AuthorizationBasedOperations(t *testing.T) {
	cases := []struct {
		name       string
		wantType   entities.TransactionType
		wantAmount *int64
		expect     func(g *mock_interfaces.MockIPaymentGateway) *gomock.Call
		call       func(uc *PaymentUseCase) (entities.Transaction, error)
	}{
		{
			name:       "refund",
			wantType:   entities.TransactionTypeReturn,
			wantAmount: int64Ptr(250),
			expect: func(g *mock_interfaces.MockIPaymentGateway) *gomock.Call {
				return g.EXPECT().Refund(gomock.Any(), int64(250), "PN-1", gomock.Any())
			},
			call: func(uc *PaymentUseCase) (entities.Transaction, error) {
				return uc.Refund(context.Background(), 250, "PN-1", entities.ChargeOptions{})
			},
		},
		{
			name:       "repeat sale",
			wantType:   entities.TransactionTypeRepeatSale,
			wantAmount: int64Ptr(300),
			expect: func(g *mock_interfaces.MockIPaymentGateway) *gomock.Call {
				return g.EXPECT().RepeatSale(gomock.Any(), int64(300), "PN-1", gomock.Any())
			},
			call: func(uc *PaymentUseCase) (entities.Transaction, error) {
				return uc.RepeatSale(context.Background(), 300, "PN-1", entities.ChargeOptions{})
			},
		},
		{
			name:     "recurring",
			wantType: entities.TransactionTypeRepeatSale,
			expect: func(g *mock_interfaces.MockIPaymentGateway) *gomock.Call {
				return g.EXPECT().Recurring(gomock.Any(), "PN-1", gomock.Any())
			},
			call: func(uc *PaymentUseCase) (entities.Transaction, error) {
				return uc.Recurring(context.Background(), "PN-1", entities.ChargeOptions{})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITransactionRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := newTestUseCase(repo, gateway)

			tc.expect(gateway).Return(approvedResult(), nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
					return tx, nil
				},
			)

			tx, err := tc.call(uc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tx.Type != tc.wantType || tx.Reference != "PN-1" {
				t.Fatalf("unexpected transaction: %+v", tx)
			}
			switch {
			case tc.wantAmount == nil && tx.Amount != nil:
				t.Fatalf("expected no amount, got %d", *tx.Amount)
			case tc.wantAmount != nil && (tx.Amount == nil || *tx.Amount != *tc.wantAmount):
				t.Fatalf("expected amount %d, got %v", *tc.wantAmount, tx.Amount)
			}
		})
	}

	t.Run("missing authorization propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway)

		gateway.EXPECT().Refund(gomock.Any(), gomock.Any(), "", gomock.Any()).Return(nil, entities.ErrMissingAuthorization)

		_, err := uc.Refund(context.Background(), 100, "", entities.ChargeOptions{})
		if !errors.Is(err, entities.ErrMissingAuthorization) {
			t.Fatalf("expected ErrMissingAuthorization, got %v", err)
		}
	})
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("GetByID repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Transaction{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Transaction{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Transaction{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByAuthorization invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.ListByAuthorization(context.Background(), " ")
		if !errors.Is(err, ErrInvalidAuthorization) {
			t.Fatalf("expected ErrInvalidAuthorization, got %v", err)
		}
	})

	t.Run("ListByAuthorization success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		expected := []entities.Transaction{{ID: "t1", CreatedAt: time.Now()}}
		repo.EXPECT().ListByAuthorization(gomock.Any(), "PN-1").Return(expected, nil)

		res, err := uc.ListByAuthorization(context.Background(), " PN-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "t1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("GatewayInfo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway)
		gateway.EXPECT().Info().Return(entities.GatewayInfo{DisplayName: "Global Payments"})

		if info := uc.GatewayInfo(); info.DisplayName != "Global Payments" {
			t.Fatalf("unexpected info %+v", info)
		}
	})
}

func int64Ptr(v int64) *int64 { return &v }
