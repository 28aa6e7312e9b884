package apperrors

import "errors"

var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPriceUnavailable     = errors.New("price unavailable")
	ErrConcurrencyConflict  = errors.New("concurrent update conflict")
	ErrConsistencyViolation = errors.New("ledger consistency violation")

	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCurrency   = errors.New("invalid currency")
	ErrInvalidFee        = errors.New("invalid fee percentage")
	ErrInvalidField      = errors.New("invalid balance field")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrDepositExists     = errors.New("deposit already exists")
	ErrDepositInactive   = errors.New("deposit is inactive")
	ErrHoldNotFound      = errors.New("hold not found")
	ErrFeeNotFound       = errors.New("server fee not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketUnavailable = errors.New("ticket no longer available")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrNotParticipant    = errors.New("user is not a participant of the ticket")
	ErrNoPendingRequest  = errors.New("no pending request")
	ErrSelfApproval      = errors.New("requester cannot approve own request")
	ErrPendingFees       = errors.New("pending server fees must be collected first")
	ErrOwnTicket         = errors.New("cannot claim own ticket")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSignature   = errors.New("invalid signature")
)
