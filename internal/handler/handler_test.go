package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minipay/minipay/internal/domain"
	"github.com/minipay/minipay/internal/ledger"
)

type mockProcessor struct {
	processFn func(ctx context.Context, p domain.Payment) error
	processed []domain.Payment
}

func (m *mockProcessor) Process(ctx context.Context, p domain.Payment) error {
	m.processed = append(m.processed, p)
	if m.processFn != nil {
		return m.processFn(ctx, p)
	}
	return nil
}

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	book := ledger.New()
	a1, err := domain.NewAccount("A001", 1000, "1234567890123456", "user1@example.com")
	if err != nil {
		t.Fatalf("failed to build account: %v", err)
	}
	if err := book.Add(a1); err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}
	return book
}

func TestHandleCreatePayment_Success(t *testing.T) {
	processor := &mockProcessor{}
	handler := NewPaymentHandler(processor, testLedger(t))

	reqBody, _ := json.Marshal(PaymentRequest{
		Method:        "CREDIT_CARD",
		Amount:        200,
		FromAccountID: "A001",
		ToAccountID:   "A002",
		CardNumber:    "1234567890123456",
	})

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(reqBody))
	rr := httptest.NewRecorder()

	handler.HandleCreatePayment(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}

	var resp APIResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if !resp.Success {
		t.Error("expected success response")
	}

	if len(processor.processed) != 1 {
		t.Fatalf("expected 1 processed payment, got %d", len(processor.processed))
	}
	p := processor.processed[0]
	if p.Method != domain.MethodCreditCard || p.Credential != "1234567890123456" {
		t.Errorf("unexpected payment built from request: %+v", p)
	}
}

func TestHandleCreatePayment_PayPalCarriesEmailCredential(t *testing.T) {
	processor := &mockProcessor{}
	handler := NewPaymentHandler(processor, testLedger(t))

	reqBody, _ := json.Marshal(PaymentRequest{
		Method:        "PAYPAL",
		Amount:        300,
		FromAccountID: "A001",
		ToAccountID:   "A002",
		PayPalEmail:   "user1@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(reqBody))
	rr := httptest.NewRecorder()

	handler.HandleCreatePayment(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if processor.processed[0].Credential != "user1@example.com" {
		t.Errorf("expected email credential, got %q", processor.processed[0].Credential)
	}
}

func TestHandleCreatePayment_ValidationError(t *testing.T) {
	processor := &mockProcessor{}
	handler := NewPaymentHandler(processor, testLedger(t))

	reqBody, _ := json.Marshal(PaymentRequest{
		Method: "WIRE",
		Amount: 200,
	})

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(reqBody))
	rr := httptest.NewRecorder()

	handler.HandleCreatePayment(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
	if len(processor.processed) != 0 {
		t.Errorf("expected no processing on validation failure")
	}
}

func TestHandleCreatePayment_BusinessFailureStatuses(t *testing.T) {
	cases := []struct {
		name       string
		processErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "credential mismatch",
			processErr: domain.NewInvalidCredentialError(domain.MethodCreditCard),
			wantStatus: http.StatusPaymentRequired,
			wantCode:   domain.ErrCodeInvalidCredential,
		},
		{
			name:       "insufficient funds",
			processErr: domain.NewInsufficientFundsError("A001"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   domain.ErrCodeInsufficientFunds,
		},
		{
			name:       "unknown account",
			processErr: domain.NewAccountNotFoundError("A999"),
			wantStatus: http.StatusNotFound,
			wantCode:   domain.ErrCodeAccountNotFound,
		},
		{
			name:       "non-positive amount",
			processErr: domain.NewInvalidAmountError(-5),
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.ErrCodeInvalidAmount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			processor := &mockProcessor{
				processFn: func(ctx context.Context, p domain.Payment) error {
					return tc.processErr
				},
			}
			handler := NewPaymentHandler(processor, testLedger(t))

			reqBody, _ := json.Marshal(PaymentRequest{
				Method:        "CREDIT_CARD",
				Amount:        200,
				FromAccountID: "A001",
				ToAccountID:   "A002",
				CardNumber:    "1234567890123456",
			})

			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(reqBody))
			rr := httptest.NewRecorder()

			handler.HandleCreatePayment(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}

			var resp APIResponse
			json.Unmarshal(rr.Body.Bytes(), &resp)
			if resp.Success {
				t.Error("expected failure response")
			}
			if resp.Error == nil || resp.Error.Code != tc.wantCode {
				t.Errorf("expected error code %s, got %+v", tc.wantCode, resp.Error)
			}
		})
	}
}

func TestHandleListAccounts(t *testing.T) {
	handler := NewPaymentHandler(&mockProcessor{}, testLedger(t))

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rr := httptest.NewRecorder()

	handler.HandleListAccounts(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Success bool                  `json:"success"`
		Data    []ledger.AccountState `json:"data"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if len(resp.Data) != 1 || resp.Data[0].ID != "A001" {
		t.Errorf("unexpected snapshot: %+v", resp.Data)
	}
}

func TestHandleGetAccount(t *testing.T) {
	handler := NewPaymentHandler(&mockProcessor{}, testLedger(t))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	t.Run("known account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts/A001", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rr.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts/A999", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rr.Code)
		}
	})
}
