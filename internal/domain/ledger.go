package domain

// DashboardSummary is the aggregated ledger view shown on the dashboard:
// pending balances in both directions plus the most recent transactions.
type DashboardSummary struct {
	OwedToMeCents int64         `json:"owed_to_me_cents"`
	IOweCents     int64         `json:"i_owe_cents"`
	Recent        []Transaction `json:"recent"`
}

// AuthTokens is the session token pair issued after a successful
// authentication against either provider.
type AuthTokens struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
