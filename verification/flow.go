package verification

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ApexAZ/zentropy-go/internal/transport"
	"github.com/ApexAZ/zentropy-go/pkg/apierrors"
)

const (
	sendPath   = "/api/v1/auth/send-verification"
	verifyPath = "/api/v1/auth/verify-code"

	// TypeEmailVerification is the verification_type this client drives.
	TypeEmailVerification = "email_verification"

	msgVerifyFailed = "Verification failed. Please try again."
	msgResendFailed = "Failed to resend verification code. Please try again."
)

// State is the flow's position in its lifecycle. Failure states are
// correctable: the next Send/Verify call proceeds from them. Verified is
// terminal.
type State int

const (
	StateIdle State = iota
	StateSending
	StateSent
	StateSendFailed
	StateVerifying
	StateVerified
	StateVerifyFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	case StateSendFailed:
		return "send_failed"
	case StateVerifying:
		return "verifying"
	case StateVerified:
		return "verified"
	case StateVerifyFailed:
		return "verify_failed"
	}
	return "unknown"
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required"`
}

type verifyCodeRequest struct {
	Email            string `json:"email" validate:"required"`
	Code             string `json:"code" validate:"required,len=6,numeric"`
	VerificationType string `json:"verification_type" validate:"required"`
}

// VerifyResult is the server's answer to a code submission.
type VerifyResult struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	UserID  json.Number `json:"user_id,omitempty"`
}

// Flow drives one email's verification: sending the code, collecting the
// six digits through Input, and submitting them. Not safe for concurrent
// use; each flow belongs to a single user action at a time.
type Flow struct {
	// Input holds the six digit cells being assembled.
	Input CodeInput

	// OnVerified, when set, is invoked once after a successful
	// verification so the caller can close or redirect.
	OnVerified func()

	http     *transport.Client
	validate *validator.Validate
	email    string
	vtype    string
	state    State
}

func NewFlow(t *transport.Client, email string) *Flow {
	return &Flow{
		http:     t,
		validate: validator.New(),
		email:    email,
		vtype:    TypeEmailVerification,
		state:    StateIdle,
	}
}

// SetVerificationType overrides the default email_verification type.
func (f *Flow) SetVerificationType(vt string) {
	f.vtype = vt
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) Email() string {
	return f.email
}

// SendCode requests a verification code for the flow's email.
func (f *Flow) SendCode(ctx context.Context) error {
	req := sendCodeRequest{Email: f.email}
	if err := f.validate.Struct(req); err != nil {
		f.state = StateSendFailed
		return apierrors.NewValidationError("Email is required")
	}

	f.state = StateSending
	if err := f.postSend(ctx, req); err != nil {
		f.state = StateSendFailed
		return err
	}
	f.state = StateSent
	return nil
}

// ResendCode re-requests the code. Failures surface a generic resend
// message, and the entered digits are cleared (with focus reset) only once
// the server confirms the resend; a failed resend leaves in-progress entry
// intact.
func (f *Flow) ResendCode(ctx context.Context) error {
	req := sendCodeRequest{Email: f.email}
	if err := f.validate.Struct(req); err != nil {
		return apierrors.NewValidationError("Email is required")
	}

	f.state = StateSending
	if err := f.postSend(ctx, req); err != nil {
		f.state = StateSendFailed
		return errors.Wrap(err, msgResendFailed)
	}
	f.Input.Clear()
	f.state = StateSent
	return nil
}

// VerifyCode submits the assembled code. It requires a non-empty email and
// exactly six digits; otherwise it fails locally without a network call.
func (f *Flow) VerifyCode(ctx context.Context) (*VerifyResult, error) {
	req := verifyCodeRequest{
		Email:            f.email,
		Code:             f.Input.Code(),
		VerificationType: f.vtype,
	}
	if err := f.validate.Struct(req); err != nil {
		f.state = StateVerifyFailed
		return nil, apierrors.NewValidationError(localVerifyErrors(err)...)
	}

	f.state = StateVerifying
	res, err := f.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            verifyPath,
		Body:            req,
		WithCredentials: true,
	})
	if err != nil {
		f.state = StateVerifyFailed
		return nil, err
	}

	var result VerifyResult
	if decodeErr := res.Decode(&result); decodeErr != nil {
		f.state = StateVerifyFailed
		return nil, apierrors.NewDecodeError(msgVerifyFailed)
	}
	if !res.OK || !result.Success {
		f.state = StateVerifyFailed
		message := result.Message
		if message == "" {
			message = msgVerifyFailed
		}
		return &result, apierrors.NewServerError(res.Status, "", message, "")
	}

	f.state = StateVerified
	if f.OnVerified != nil {
		f.OnVerified()
	}
	return &result, nil
}

func (f *Flow) postSend(ctx context.Context, req sendCodeRequest) error {
	res, err := f.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            sendPath,
		Body:            req,
		WithCredentials: true,
	})
	if err != nil {
		return err
	}
	if !res.OK {
		var body struct {
			Detail  string `json:"detail"`
			Message string `json:"message"`
		}
		if decodeErr := res.Decode(&body); decodeErr != nil {
			return apierrors.NewDecodeError(msgResendFailed)
		}
		return apierrors.NewServerError(res.Status, body.Detail, body.Message, "")
	}
	return nil
}

// localVerifyErrors maps struct validation failures to the messages shown
// to the user.
func localVerifyErrors(err error) []string {
	var msgs []string
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{msgVerifyFailed}
	}
	for _, fieldErr := range invalid {
		switch fieldErr.Field() {
		case "Email":
			msgs = append(msgs, "Email is required")
		case "Code":
			msgs = append(msgs, "Verification code must be 6 digits")
		case "VerificationType":
			msgs = append(msgs, "Verification type is required")
		}
	}
	if len(msgs) == 0 {
		return []string{msgVerifyFailed}
	}
	return msgs
}
