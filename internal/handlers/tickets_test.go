package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ClaimTicket(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "успешный захват",
			wantStatus: http.StatusOK,
		},
		{
			name:       "недостаточно средств",
			err:        fmt.Errorf("%w: need 120", apperrors.ErrInsufficientFunds),
			wantStatus: http.StatusPaymentRequired,
			wantBody:   "insufficient balance",
		},
		{
			name:       "нет цены для части валют",
			err:        fmt.Errorf("%w (%w)", apperrors.ErrInsufficientFunds, apperrors.ErrPriceUnavailable),
			wantStatus: http.StatusPaymentRequired,
			wantBody:   "insufficient balance",
		},
		{
			name:       "тикет уже захвачен",
			err:        apperrors.ErrTicketUnavailable,
			wantStatus: http.StatusConflict,
			wantBody:   "ticket no longer available",
		},
		{
			name:       "тикет не найден",
			err:        apperrors.ErrTicketNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "свой тикет",
			err:        apperrors.ErrOwnTicket,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "сервис цен недоступен",
			err:        apperrors.ErrPriceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "нарушение инварианта",
			err:        apperrors.ErrConsistencyViolation,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
		{
			name:       "неизвестная ошибка",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			var ticket *models.Ticket
			if tt.err == nil {
				ticket = &models.Ticket{ID: id, Status: models.TicketClaimed, AssignedTo: "ex-1"}
			}
			m.tickets.EXPECT().ClaimTicket(gomock.Any(), id, "ex-1").Return(ticket, tt.err)

			resp := do(t, router, http.MethodPost, "/api/tickets/"+id.String()+"/claim", "", "ex-1", "exchanger")
			body := readBody(t, resp)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Contains(t, body, tt.wantBody)
			}
			if tt.err == nil {
				var got models.Ticket
				require.NoError(t, json.Unmarshal([]byte(body), &got))
				assert.Equal(t, "ex-1", got.AssignedTo)
			}
		})
	}
}

func TestHandler_CreateTicket(t *testing.T) {
	router, m := newTestRouter(t)

	m.tickets.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in models.NewTicket) (*models.Ticket, error) {
			assert.Equal(t, "client-1", in.ClientID)
			assert.True(t, decimal.NewFromInt(100).Equal(in.AmountUSD))
			return &models.Ticket{ID: uuid.New(), ClientID: in.ClientID, AmountUSD: in.AmountUSD, Status: models.TicketOpen}, nil
		})

	resp := do(t, router, http.MethodPost, "/api/tickets",
		`{"client_id":"someone-else","amount_usd":"100"}`, "client-1", "client")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	bad := do(t, router, http.MethodPost, "/api/tickets", `{"amount_usd":`, "client-1", "client")
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestHandler_ListTickets(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		role       string
		wantFilter models.TicketFilter
		result     []models.Ticket
		wantStatus int
	}{
		{
			name:       "очередь для обменника",
			query:      "",
			role:       "exchanger",
			wantFilter: models.TicketFilter{Statuses: models.ClaimableStatuses},
			result:     []models.Ticket{{ID: uuid.New(), Status: models.TicketOpen}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "мои тикеты",
			query:      "?assigned=me&status=claimed&limit=5",
			role:       "exchanger",
			wantFilter: models.TicketFilter{Statuses: []models.TicketStatus{models.TicketClaimed}, AssignedTo: "ex-1", Limit: 5},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "администратор видит всё",
			query:      "?status=settling",
			role:       "admin",
			wantFilter: models.TicketFilter{Statuses: []models.TicketStatus{models.TicketSettling}},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.tickets.EXPECT().ListTickets(gomock.Any(), tt.wantFilter).Return(tt.result, nil)

			resp := do(t, router, http.MethodGet, "/api/tickets"+tt.query, "", "ex-1", tt.role)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}

	router, _ := newTestRouter(t)
	resp := do(t, router, http.MethodGet, "/api/tickets?limit=x", "", "ex-1", "exchanger")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_TicketActions(t *testing.T) {
	id := uuid.New()
	ok := &models.Ticket{ID: id}

	tests := []struct {
		name       string
		path       string
		body       string
		mock       func(m *mocks)
		wantStatus int
	}{
		{
			name: "отмена с причиной",
			path: "/cancel",
			body: `{"reason":"changed my mind"}`,
			mock: func(m *mocks) {
				m.tickets.EXPECT().CancelTicket(gomock.Any(), id, "u-1", "changed my mind").Return(ok, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "закрытие без тела",
			path: "/close",
			mock: func(m *mocks) {
				m.tickets.EXPECT().CloseTicket(gomock.Any(), id, "u-1", "").Return(ok, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "запрос изменения суммы",
			path: "/amount-change",
			body: `{"amount":"150","reason":"more"}`,
			mock: func(m *mocks) {
				m.tickets.EXPECT().RequestAmountChange(gomock.Any(), id, "u-1", gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, _ string, in models.AmountChangeInput) (*models.Ticket, error) {
						assert.True(t, decimal.NewFromInt(150).Equal(in.Amount))
						return ok, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "изменение суммы без средств",
			path: "/amount-change",
			body: `{"amount":"1500"}`,
			mock: func(m *mocks) {
				m.tickets.EXPECT().RequestAmountChange(gomock.Any(), id, "u-1", gomock.Any()).
					Return(nil, apperrors.ErrInsufficientFunds)
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name: "одобрение своего запроса",
			path: "/fee-change/approve",
			mock: func(m *mocks) {
				m.tickets.EXPECT().ApproveFeeChange(gomock.Any(), id, "u-1").Return(nil, apperrors.ErrSelfApproval)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "недопустимый переход",
			path: "/complete",
			mock: func(m *mocks) {
				m.tickets.EXPECT().CompleteTicket(gomock.Any(), id, "u-1").Return(nil, apperrors.ErrInvalidTransition)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "чужой тикет",
			path: "/client-sent",
			mock: func(m *mocks) {
				m.tickets.EXPECT().MarkClientSent(gomock.Any(), id, "u-1").Return(nil, apperrors.ErrNotParticipant)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "некорректное тело",
			path:       "/fee-change",
			body:       `{"fee_percentage":`,
			mock:       func(m *mocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.mock(m)

			resp := do(t, router, http.MethodPost, "/api/tickets/"+id.String()+tt.path, tt.body, "u-1", "exchanger")
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_GetTicketHolds(t *testing.T) {
	id := uuid.New()
	ticket := &models.Ticket{ID: id, ClientID: "client-1", AssignedTo: "ex-1"}
	holds := []models.Hold{{ID: uuid.New(), TicketID: id, UserID: "ex-1", Currency: "USDT"}}

	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
	}{
		{"участник", "ex-1", "exchanger", http.StatusOK},
		{"администратор", "boss", "admin", http.StatusOK},
		{"посторонний", "ex-2", "exchanger", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.tickets.EXPECT().GetTicket(gomock.Any(), id).Return(ticket, nil)
			if tt.wantStatus == http.StatusOK {
				m.holds.EXPECT().GetHoldsByTicket(gomock.Any(), id).Return(holds, nil)
			}

			resp := do(t, router, http.MethodGet, "/api/tickets/"+id.String()+"/holds", "", tt.userID, tt.role)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
