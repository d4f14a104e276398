package user

// OTPPendingError signals that registration succeeded but email verification
// is still outstanding.
type OTPPendingError struct {
	Email string
}

func (e OTPPendingError) Error() string {
	return "OTP pending verification for " + e.Email
}

// BannedError signals that the account is banned and may not sign in.
type BannedError struct {
	Reason string
}

func (e BannedError) Error() string {
	if e.Reason == "" {
		return "account is banned"
	}
	return "account is banned: " + e.Reason
}
