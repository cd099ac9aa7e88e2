package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/covenantlabs/covenant/internal/contract"
	"github.com/covenantlabs/covenant/internal/providers"
)

func newTestExtractor(mock *providers.MockClient) *Extractor {
	return New(mock, Options{Model: "test/model"})
}

func TestNewTemperatureOption(t *testing.T) {
	mock := providers.NewMockClient()

	if e := New(mock, Options{}); e.temperature != 0.1 {
		t.Errorf("unset temperature = %v, want default 0.1", e.temperature)
	}

	zero := 0.0
	if e := New(mock, Options{Temperature: &zero}); e.temperature != 0 {
		t.Errorf("temperature = %v, want explicit 0", e.temperature)
	}

	warm := 0.7
	if e := New(mock, Options{Temperature: &warm}); e.temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", e.temperature)
	}
}

func TestExtractEmptyInputSkipsProvider(t *testing.T) {
	mock := providers.NewMockClient()
	e := newTestExtractor(mock)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := e.Extract(context.Background(), input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Extract(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
	if got := mock.RequestCount(); got != 0 {
		t.Fatalf("provider invoked %d times for empty input, want 0", got)
	}
}

func TestExtractRoundTripFidelity(t *testing.T) {
	stub := map[string]any{
		"contract_title":        "MASTER SOFTWARE LICENSE AND SERVICES AGREEMENT",
		"effective_date":        "2024-07-15",
		"expiration_date":       "2027-07-15",
		"execution_date":        "2024-07-10",
		"contract_id_reference": "MSSA-2024-TS-SL",
		"parties": []any{
			map[string]any{
				"name": "Quantum Dynamics Inc.",
				"role": "Licensor",
				"address": map[string]any{
					"street":         "1 Quantum Leap",
					"city":           "Palo Alto",
					"state_province": "CA",
					"postal_code":    "94301",
					"country":        "USA",
				},
			},
			map[string]any{"name": "Global Synergy Partners LLC", "role": "Licensee"},
		},
		"primary_software_products": []any{
			map[string]any{
				"name":             "FusionPlatform",
				"version":          "3.0",
				"modules_features": []any{"DataCore", "AnalyticsSuite"},
				"description":      "Financial data analytics platform",
			},
		},
		"included_services": []any{
			map[string]any{"service_type": "Support", "description": "Standard Support (8x5, Pacific Time)"},
			map[string]any{"service_type": "Implementation"},
		},
		"intended_use_case_purpose":        "Automating financial data analytics and reporting workflows",
		"total_contract_value_description": "$150,000 USD annually plus $25,000 implementation",
		"payment_milestones": []any{
			map[string]any{
				"description":          "Year 1 subscription",
				"amount":               150000.0,
				"currency":             "USD",
				"due_date_description": "Net 30",
				"due_date":             "2024-07-15",
			},
		},
		"penalty_clauses": []any{
			map[string]any{"condition": "Late Payment", "penalty_description": "1.5% monthly interest"},
		},
		"license_type_description":             "3-year subscription, SaaS deployment only",
		"usage_limits_description":             "Up to 250 named users",
		"territory_description":                "Worldwide",
		"transferability_sublicensing_allowed": false,
		"support_hours_availability":           "8x5, Pacific Time",
		"service_level_agreements": []any{
			map[string]any{
				"metric":     "Response Time",
				"commitment": "4 hours for critical incidents",
				"remedy":     "Service credits up to 5% of monthly subscription fee",
			},
		},
		"key_deliverables": []any{
			map[string]any{
				"description":          "Configured FusionPlatform instance",
				"due_date_description": "Within 5 business days of Effective Date",
			},
		},
		"insurance_requirements_description": "Professional liability and cyber insurance of at least $2 million",
		"data_privacy_clause_summary":        "CCPA and GDPR compliance required",
		"ip_ownership_description":           "All IP remains solely with Quantum",
	}
	stubJSON, err := json.Marshal(stub)
	if err != nil {
		t.Fatalf("failed to marshal stub: %v", err)
	}

	mock := providers.NewMockClient()
	mock.ResponseJSON = stubJSON
	e := newTestExtractor(mock)

	got, err := e.Extract(context.Background(), "some contract text")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := mock.RequestCount(); got != 1 {
		t.Fatalf("provider invoked %d times, want 1", got)
	}

	if got.ContractTitle == nil || *got.ContractTitle != "MASTER SOFTWARE LICENSE AND SERVICES AGREEMENT" {
		t.Errorf("ContractTitle = %v", got.ContractTitle)
	}
	if got.EffectiveDate == nil || got.EffectiveDate.String() != "2024-07-15" {
		t.Errorf("EffectiveDate = %v", got.EffectiveDate)
	}
	if got.ContractIDReference == nil || *got.ContractIDReference != "MSSA-2024-TS-SL" {
		t.Errorf("ContractIDReference = %v", got.ContractIDReference)
	}
	if len(got.Parties) != 2 {
		t.Fatalf("parties = %d, want 2", len(got.Parties))
	}
	licensor := got.Parties[0]
	if licensor.Name != "Quantum Dynamics Inc." {
		t.Errorf("party name = %q", licensor.Name)
	}
	if licensor.Address == nil || licensor.Address.City == nil || *licensor.Address.City != "Palo Alto" {
		t.Errorf("party address = %+v", licensor.Address)
	}
	if len(got.PrimarySoftwareProducts) != 1 {
		t.Fatalf("products = %d, want 1", len(got.PrimarySoftwareProducts))
	}
	product := got.PrimarySoftwareProducts[0]
	if product.Name != "FusionPlatform" || product.Version == nil || *product.Version != "3.0" {
		t.Errorf("product = %+v", product)
	}
	if len(product.ModulesFeatures) != 2 || product.ModulesFeatures[0] != "DataCore" {
		t.Errorf("modules = %v", product.ModulesFeatures)
	}
	if len(got.PaymentMilestones) != 1 {
		t.Fatalf("milestones = %d, want 1", len(got.PaymentMilestones))
	}
	milestone := got.PaymentMilestones[0]
	if milestone.Amount == nil || *milestone.Amount != 150000.0 {
		t.Errorf("milestone amount = %v", milestone.Amount)
	}
	if milestone.DueDate == nil || milestone.DueDate.String() != "2024-07-15" {
		t.Errorf("milestone due date = %v", milestone.DueDate)
	}
	if len(got.PenaltyClauses) != 1 || got.PenaltyClauses[0].Condition != "Late Payment" {
		t.Errorf("penalties = %+v", got.PenaltyClauses)
	}
	if len(got.ServiceLevelAgreements) != 1 || got.ServiceLevelAgreements[0].Metric != "Response Time" {
		t.Errorf("SLAs = %+v", got.ServiceLevelAgreements)
	}
	if got.TransferabilitySublicensingAllowed == nil || *got.TransferabilitySublicensingAllowed != false {
		t.Errorf("transferability = %v", got.TransferabilitySublicensingAllowed)
	}

	// Untouched optional fields stay absent.
	if got.DiscountsCreditsDescription != nil {
		t.Errorf("discounts = %v, want nil", got.DiscountsCreditsDescription)
	}
	if got.MaintenanceScheduleDescription != nil {
		t.Errorf("maintenance = %v, want nil", got.MaintenanceScheduleDescription)
	}
}

func TestExtractValidationFailure(t *testing.T) {
	// Party record missing its required name field.
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"parties":[{"role":"Licensor"}]}`)
	e := newTestExtractor(mock)

	_, err := e.Extract(context.Background(), "some contract text")
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %T (%v), want *ValidationError", err, err)
	}
	if len(ve.Causes) == 0 {
		t.Fatal("validation error has no causes")
	}
	found := false
	for _, c := range ve.Causes {
		if strings.HasPrefix(c.Field, "/parties/0") {
			found = true
		}
	}
	if !found {
		t.Errorf("no cause identifies /parties/0, got %+v", ve.Causes)
	}
}

func TestExtractExternalFailure(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ShouldFail = true
	e := newTestExtractor(mock)

	_, err := e.Extract(context.Background(), "some contract text")
	if err == nil {
		t.Fatal("expected external error")
	}
	var ee *ExternalError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %T (%v), want *ExternalError", err, err)
	}
	if ee.Provider != providers.MockClientName {
		t.Errorf("provider = %q", ee.Provider)
	}
}

func TestExtractMissingStructuredOutput(t *testing.T) {
	// Provider succeeds but returns no parsed JSON.
	mock := providers.NewMockClient()
	mock.ResponseText = "I cannot help with that."
	e := newTestExtractor(mock)

	_, err := e.Extract(context.Background(), "some contract text")
	var ee *ExternalError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %T (%v), want *ExternalError", err, err)
	}
}

func TestExtractContextCancellation(t *testing.T) {
	mock := providers.NewMockClient()
	mock.Latency = 50 * time.Millisecond
	mock.ResponseJSON = json.RawMessage(`{}`)
	e := newTestExtractor(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, "some contract text")
	var ee *ExternalError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %T (%v), want *ExternalError", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestExtractSampleAgreementScenario(t *testing.T) {
	stubJSON := json.RawMessage(`{
		"contract_title": "MASTER SOFTWARE LICENSE AND SERVICES AGREEMENT",
		"effective_date": "2024-07-15",
		"primary_software_products": [{"name": "FusionPlatform", "version": "3.0"}]
	}`)

	mock := providers.NewMockClient()
	mock.ResponseJSON = stubJSON
	e := newTestExtractor(mock)

	analysis, err := e.Extract(context.Background(), contract.SampleText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	out, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(out, &asMap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(asMap["contract_title"]) != `"MASTER SOFTWARE LICENSE AND SERVICES AGREEMENT"` {
		t.Errorf("contract_title = %s", string(asMap["contract_title"]))
	}
	if string(asMap["effective_date"]) != `"2024-07-15"` {
		t.Errorf("effective_date = %s", string(asMap["effective_date"]))
	}
	var products []map[string]any
	if err := json.Unmarshal(asMap["primary_software_products"], &products); err != nil {
		t.Fatalf("products unmarshal failed: %v", err)
	}
	if len(products) != 1 || products[0]["name"] != "FusionPlatform" || products[0]["version"] != "3.0" {
		t.Errorf("primary_software_products = %v", products)
	}
}
