package dto

// AuthRequest describes login/password payload. ReferralCode is accepted on
// registration only.
type AuthRequest struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code,omitempty"`
}
