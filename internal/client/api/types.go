package api

// TokenPair is the credential pair returned by the token endpoint.
// Access is short-lived and attached to every authenticated request;
// Refresh is long-lived and used only to mint a new access token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Preferences holds the optional per-user settings block. It is opaque to
// the client core and passed through to display logic unmodified.
type Preferences struct {
	Activities []string `json:"activities"`
	Location   string   `json:"location"`
	Level      string   `json:"level"`
	Objectives []string `json:"objectives,omitempty"`
}

// Company is the linked company record present on business accounts.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is the current-user profile as served by GET me/.
// Type ("personal" or "business") and IsStaff are independent axes:
// guards check them separately, so they stay separate fields.
type User struct {
	ID          int64        `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Type        string       `json:"type"`
	IsStaff     bool         `json:"is_staff"`
	Avatar      string       `json:"avatar,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Company     *Company     `json:"company,omitempty"`
}

// Account type values used by User.Type.
const (
	AccountPersonal = "personal"
	AccountBusiness = "business"
)

// Activity is a bookable activity as served by the activities endpoints.
type Activity struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Duration        string  `json:"duration"`
	Participants    int     `json:"participants"`
	MaxParticipants int     `json:"max_participants"`
	Price           string  `json:"price"`
	Level           string  `json:"level"`
	SportZen        bool    `json:"sport_zen"`
	Rating          float64 `json:"rating"`
	Instructor      string  `json:"instructor,omitempty"`
	Image           string  `json:"image,omitempty"`
}

// ActivityForm is the payload for creating a new activity listing.
type ActivityForm struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        string `json:"duration"`
	MaxParticipants int    `json:"max_participants"`
	Price           string `json:"price"`
	Level           string `json:"level"`
	SportZen        bool   `json:"sport_zen"`
	Image           string `json:"image,omitempty"`
	Instructor      string `json:"instructor,omitempty"`
}

// Plan is a wellness subscription plan as served by GET plans/.
type Plan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	BillingPeriod string `json:"billing_period"`
}

// SubscriptionRequest is the payload for a corporate subscription enquiry.
type SubscriptionRequest struct {
	Plan        string `json:"plan"`
	CompanyName string `json:"company_name"`
	AdminName   string `json:"admin_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message,omitempty"`
}

// CompanySignupForm is the payload for the company signup endpoint.
type CompanySignupForm struct {
	Plan           string `json:"plan"`
	CompanyName    string `json:"companyName"`
	AdminName      string `json:"adminName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EmployeesCount int    `json:"employeesCount"`
	NeedsAPI       bool   `json:"needsAPI"`
}

// RegistrationForm is the payload for creating a new account.
type RegistrationForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type,omitempty"`
}
