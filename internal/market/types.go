// =================================
// File: internal/market/types.go
// =================================
package market

import "github.com/niveshak-app/niveshak/internal/series"

// Account identifies the logged-in investor.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Summary is the account-level rollup shown on the dashboard.
type Summary struct {
	Invested float64 `json:"invested_amount"`
	Current  float64 `json:"current_amount"`
	Returns  float64 `json:"estimated_returns"`
	Currency string  `json:"currency"`
}

// Holding is a single scheme position in the portfolio.
type Holding struct {
	SchemeID   string  `json:"scheme_id"`
	SchemeName string  `json:"scheme_name"`
	Units      float64 `json:"units"`
	NAV        float64 `json:"nav"`
	Value      float64 `json:"value"`
}

// Overview bundles the concurrent dashboard fetch.
type Overview struct {
	Summary  Summary
	Holdings []Holding
}

type loginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp,omitempty"`
}

type loginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

type holdingsResponse struct {
	Holdings []Holding `json:"holdings"`
}

// navHistoryResponse carries the raw DD-MM-YYYY series; windowing and
// normalization happen in the series package, not here.
type navHistoryResponse struct {
	Data []series.RawPoint `json:"data"`
}
