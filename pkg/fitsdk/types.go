package fitsdk

// Error codes returned by the FitGate API.
const (
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeInvalidAnswer   = "invalid_answer"
	ErrorCodeInvalidCode     = "invalid_code"
	ErrorCodeUnknownCode     = "unknown_code"
	ErrorCodeSessionNotFound = "session_not_found"
	ErrorCodeFlowConflict    = "flow_conflict"
	ErrorCodeServerError     = "server_error"
)

// ErrorResponse is the standard error body for all endpoints.
type ErrorResponse struct {
	// Error is a machine-readable error code
	Error string `json:"error" example:"invalid_answer"`

	// ErrorDescription is a human-readable description
	ErrorDescription string `json:"error_description" example:"answer must be one of the listed options"`
}

// OptionPayload is one selectable choice of a select question.
type OptionPayload struct {
	Value string `json:"value" example:"beginner"`
	Label string `json:"label" example:"Just getting started"`
}

// QuestionPayload describes the current intake question.
type QuestionPayload struct {
	ID      int             `json:"id" example:"3"`
	Key     string          `json:"key" example:"fitness-level"`
	Prompt  string          `json:"prompt" example:"How would you describe your current fitness level?"`
	Type    string          `json:"type" example:"single-select"`
	Options []OptionPayload `json:"options,omitempty"`

	// Step/Total position the question within the flow, e.g. 3 of 5.
	Step  int `json:"step" example:"3"`
	Total int `json:"total" example:"5"`
}

// StartSessionResponse opens an onboarding flow.
type StartSessionResponse struct {
	SessionToken string          `json:"session_token"`
	Question     QuestionPayload `json:"question"`
}

// SubmitAnswerRequest carries one answer. Value is used for text, email and
// single-select questions; Values for multi-select.
type SubmitAnswerRequest struct {
	Value  string   `json:"value,omitempty" example:"advanced"`
	Values []string `json:"values,omitempty"`
}

// CompletionPayload is returned once the final answer lands.
type CompletionPayload struct {
	Tier             string   `json:"tier" example:"ADV"`
	TierLabel        string   `json:"tier_label" example:"Advanced"`
	AccessCode       string   `json:"access_code" example:"FIT-ADV-4242"`
	Name             string   `json:"name" example:"Jess"`
	Email            string   `json:"email" example:"jess@example.com"`
	UnlockedFeatures []string `json:"unlocked_features"`
	LockedFeatures   []string `json:"locked_features"`
}

// SubmitAnswerResponse advances the flow. Exactly one of Question and
// Completion is set: Question while the flow continues, Completion once done.
type SubmitAnswerResponse struct {
	Question   *QuestionPayload   `json:"question,omitempty"`
	Completion *CompletionPayload `json:"completion,omitempty"`
}

// BackResponse re-opens the previous question.
type BackResponse struct {
	Question QuestionPayload `json:"question"`
}

// LoginRequest validates an access code.
type LoginRequest struct {
	AccessCode string `json:"access_code" example:"FIT-ADV-4242"`
}

// LoginResponse opens a dashboard session.
type LoginResponse struct {
	SessionToken string `json:"session_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int    `json:"expires_in" example:"3600"`
	Tier         string `json:"tier" example:"ADV"`
	TierLabel    string `json:"tier_label" example:"Advanced"`
	Name         string `json:"name" example:"Jess"`
}

// EntitlementsResponse lists feature access for the session's tier.
type EntitlementsResponse struct {
	Tier             string   `json:"tier" example:"ADV"`
	Rank             int      `json:"rank" example:"3"`
	UnlockedFeatures []string `json:"unlocked_features"`
	LockedFeatures   []string `json:"locked_features"`
}

// FeatureCheckResponse is a single feature membership test.
type FeatureCheckResponse struct {
	Feature  string `json:"feature" example:"ai-form-analysis"`
	Tier     string `json:"tier" example:"ADV"`
	Unlocked bool   `json:"unlocked" example:"false"`
}

// ProfileResponse is the durable member profile.
type ProfileResponse struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Tier        string   `json:"tier"`
	TierLabel   string   `json:"tier_label"`
	AccessCode  string   `json:"access_code"`
	Goals       []string `json:"goals"`
	Activities  []string `json:"activities"`
	CreatedAt   string   `json:"created_at"`
	LastLoginAt string   `json:"last_login_at,omitempty"`
}

// LeadRecord is one row of the marketing ledger.
type LeadRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Tier           string `json:"tier"`
	AccessCode     string `json:"access_code"`
	Source         string `json:"source"`
	RawPreferences string `json:"raw_preferences"`
	CreatedAt      string `json:"created_at"`
}

// ListLeadsResponse returns leads newest first.
type ListLeadsResponse struct {
	Leads []LeadRecord `json:"leads"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// HealthResponse is shared by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"v0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
