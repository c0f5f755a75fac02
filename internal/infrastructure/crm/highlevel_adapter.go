package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/futurefulfillmentdev/future-shipping/internal/application"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/logging"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/metrics"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/resilience"
)

const leadSource = "Future Fulfillment Quiz"

// Config holds HighLevel API connection settings
type Config struct {
	APIURL     string
	APIKey     string
	LocationID string
	Timeout    time.Duration
}

// HighLevelAdapter is the Anti-Corruption Layer adapter for the GoHighLevel
// CRM. It translates survey contacts into HighLevel's contact schema and
// upserts them: create first, and on a duplicate-email response search by
// email and update the existing contact.
type HighLevelAdapter struct {
	config  Config
	client  *http.Client
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

// NewHighLevelAdapter creates a new HighLevel CRM adapter
func NewHighLevelAdapter(config Config, logger *logging.Logger, m *metrics.Metrics) *HighLevelAdapter {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	breakerConfig := resilience.DefaultCircuitBreakerConfig("highlevel")
	breakerConfig.OnStateChange = func(name string, from, to gobreaker.State) {
		m.SetCircuitBreakerState(name, int(to))
		if to == gobreaker.StateOpen {
			m.RecordCircuitBreakerTrip(name)
		}
	}

	return &HighLevelAdapter{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		breaker: resilience.NewCircuitBreaker(breakerConfig, logger.Logger),
		logger:  logger.WithComponent("highlevel_adapter"),
	}
}

// SyncContact upserts a contact into HighLevel
func (a *HighLevelAdapter) SyncContact(ctx context.Context, contact application.Contact) (*application.SyncResult, error) {
	payload := a.toHighLevelContact(contact)

	result, err := a.breaker.Execute(func() (interface{}, error) {
		return a.upsert(ctx, contact.Email, payload)
	})
	if err != nil {
		return nil, err
	}

	return result.(*application.SyncResult), nil
}

func (a *HighLevelAdapter) upsert(ctx context.Context, email string, payload *highLevelContact) (*application.SyncResult, error) {
	// 1. Attempt to create the contact
	status, body, err := a.do(ctx, http.MethodPost, a.config.APIURL+"/contacts/", payload)
	if err != nil {
		return nil, err
	}

	if status >= 200 && status < 300 {
		var created highLevelContactResponse
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, fmt.Errorf("decode create response: %w", err)
		}
		return &application.SyncResult{Action: "created", ContactID: created.ContactID()}, nil
	}

	if !isDuplicateResponse(status, body) {
		return nil, fmt.Errorf("highlevel create failed: status %d: %s", status, truncate(body))
	}

	// 2. Duplicate email: search for the existing contact
	searchURL := fmt.Sprintf("%s/contacts/?locationId=%s&email=%s",
		a.config.APIURL, url.QueryEscape(a.config.LocationID), url.QueryEscape(email))
	status, body, err = a.do(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("highlevel search failed: status %d: %s", status, truncate(body))
	}

	var search highLevelSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if len(search.Contacts) == 0 || search.Contacts[0].ID == "" {
		return nil, fmt.Errorf("no existing contact found after duplicate response")
	}
	existingID := search.Contacts[0].ID

	// 3. Update the existing contact
	status, body, err = a.do(ctx, http.MethodPut, a.config.APIURL+"/contacts/"+existingID, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("highlevel update failed: status %d: %s", status, truncate(body))
	}

	return &application.SyncResult{Action: "updated", ContactID: existingID}, nil
}

func (a *HighLevelAdapter) do(ctx context.Context, method, requestURL string, payload *highLevelContact) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// isDuplicateResponse recognizes the provider's duplicate-email signals,
// which vary between a status code and an error message.
func isDuplicateResponse(status int, body []byte) bool {
	if status == http.StatusConflict || status == http.StatusUnprocessableEntity {
		return true
	}
	text := strings.ToLower(string(body))
	return strings.Contains(text, "duplicate") ||
		strings.Contains(text, "already exists") ||
		strings.Contains(text, "unique constraint")
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

// --- Translation methods (ACL) ---

// toHighLevelContact translates an application Contact → HighLevel API contact
func (a *HighLevelAdapter) toHighLevelContact(contact application.Contact) *highLevelContact {
	firstName, lastName := splitName(contact.FullName)

	primaryCategory := contact.Products
	if i := strings.Index(primaryCategory, ","); i >= 0 {
		primaryCategory = strings.TrimSpace(primaryCategory[:i])
	}

	fields := []highLevelCustomField{
		{Key: "Products", Value: contact.Products},
		{Key: "Product Category", Value: primaryCategory},
		{Key: "Website", Value: contact.Website},
		{Key: "Volume", Value: contact.MonthlyOrders},
		{Key: "Monthly Orders", Value: contact.MonthlyOrders},
		{Key: "SKU Range", Value: contact.SKURange},
		{Key: "Package Weight", Value: contact.PackageWeight},
		{Key: "Package Size", Value: contact.PackageSize},
		{Key: "Current Shipping Method", Value: contact.CurrentShipping},
		{Key: "Biggest Shipping Problem", Value: contact.BiggestProblem},
		{Key: "Shipping Cost Per Order", Value: contact.ShippingCost},
		{Key: "Customer Location", Value: contact.CustomerLocation},
		{Key: "Delivery Expectation", Value: contact.DeliveryExpectation},
		{Key: "Quiz Completed", Value: time.Now().UTC().Format(time.RFC3339)},
		{Key: "Lead Source", Value: leadSource},
	}

	// Drop empty values so HighLevel doesn't clear fields on update
	nonEmpty := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}

	return &highLevelContact{
		LocationID:   a.config.LocationID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        contact.Email,
		Phone:        contact.Phone,
		Website:      contact.Website,
		Source:       leadSource,
		Tags:         []string{"QUIZ"},
		CustomFields: nonEmpty,
	}
}

// splitName splits a full name into first and last; HighLevel requires a
// non-empty last name.
func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", "-"
	}
	if len(parts) == 1 {
		return parts[0], "-"
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// --- HighLevel API models ---

type highLevelContact struct {
	LocationID   string                 `json:"locationId"`
	FirstName    string                 `json:"firstName"`
	LastName     string                 `json:"lastName"`
	Email        string                 `json:"email,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	Website      string                 `json:"website,omitempty"`
	Source       string                 `json:"source"`
	Tags         []string               `json:"tags"`
	CustomFields []highLevelCustomField `json:"customFields"`
}

type highLevelCustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// The create endpoint has returned the ID both at the top level and nested
// under "contact" across API revisions.
type highLevelContactResponse struct {
	ID      string `json:"id"`
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

func (r highLevelContactResponse) ContactID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Contact.ID
}

type highLevelSearchResponse struct {
	Contacts []struct {
		ID string `json:"id"`
	} `json:"contacts"`
}
