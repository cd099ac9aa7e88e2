package contract

import "encoding/json"

// Sub-record schemas. Optional fields are nullable rather than omitted so
// strict structured-output modes return every key.

var addressSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"street":         map[string]any{"type": []string{"string", "null"}},
		"city":           map[string]any{"type": []string{"string", "null"}},
		"state_province": map[string]any{"type": []string{"string", "null"}},
		"postal_code":    map[string]any{"type": []string{"string", "null"}},
		"country":        map[string]any{"type": []string{"string", "null"}},
	},
	"additionalProperties": false,
}

var partySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Full legal name of the party",
		},
		"role": map[string]any{
			"type":        []string{"string", "null"},
			"description": "e.g., Licensor, Licensee, Vendor, Client, Party A, Party B",
		},
		"address": anyOfNull(addressSchema, "Physical or mailing address"),
		"authorized_signatory_name": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Name of the person who signed, if identifiable",
		},
		"full_text_reference": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Exact text identifying this party",
		},
	},
	"required":             []string{"name"},
	"additionalProperties": false,
}

var softwareProductSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Primary name of the software or product",
		},
		"version": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Specific version identifier, if mentioned",
		},
		"modules_features": map[string]any{
			"type":        []string{"array", "null"},
			"items":       map[string]any{"type": "string"},
			"description": "List of included modules or key features",
		},
		"description": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Brief description of the software/product",
		},
	},
	"required":             []string{"name"},
	"additionalProperties": false,
}

var serviceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"service_type": map[string]any{
			"type":        "string",
			"description": "Type of service provided, e.g., Maintenance, Support, Training, Integration",
		},
		"description": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Details about the service scope",
		},
	},
	"required":             []string{"service_type"},
	"additionalProperties": false,
}

var paymentMilestoneSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"description": map[string]any{
			"type":        "string",
			"description": "What triggers or describes this payment",
		},
		"amount": map[string]any{
			"type":        []string{"number", "null"},
			"description": "Monetary amount",
		},
		"currency": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Currency code (e.g., USD, EUR, INR)",
		},
		"due_date_description": map[string]any{
			"type":        []string{"string", "null"},
			"description": "When the payment is due (e.g., 'Net 30', 'Upon signing', specific date)",
		},
		"due_date": map[string]any{
			"type":        []string{"string", "null"},
			"format":      "date",
			"description": "Specific calendar due date (YYYY-MM-DD), if available",
		},
	},
	"required":             []string{"description"},
	"additionalProperties": false,
}

var penaltySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"condition": map[string]any{
			"type":        "string",
			"description": "Condition triggering the penalty (e.g., Late Payment, Non-performance)",
		},
		"penalty_description": map[string]any{
			"type":        "string",
			"description": "Description of the penalty (e.g., '1.5% interest per month', 'Fixed fee')",
		},
	},
	"required":             []string{"condition", "penalty_description"},
	"additionalProperties": false,
}

var slaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"metric": map[string]any{
			"type":        "string",
			"description": "The SLA metric (e.g., Uptime, Response Time, Resolution Time)",
		},
		"commitment": map[string]any{
			"type":        "string",
			"description": "The specific commitment (e.g., '99.9% uptime', '4 hours for critical issues')",
		},
		"remedy": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Remedy or credit for failing to meet the SLA",
		},
	},
	"required":             []string{"metric", "commitment"},
	"additionalProperties": false,
}

var deliverableSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"description": map[string]any{
			"type":        "string",
			"description": "Description of the deliverable item or milestone",
		},
		"due_date_description": map[string]any{
			"type":        []string{"string", "null"},
			"description": "When it's due (e.g., 'Phase 1 complete', specific date)",
		},
		"due_date": map[string]any{
			"type":        []string{"string", "null"},
			"format":      "date",
			"description": "Specific calendar due date (YYYY-MM-DD), if available",
		},
		"acceptance_criteria_summary": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Brief summary of how the deliverable is accepted",
		},
	},
	"required":             []string{"description"},
	"additionalProperties": false,
}

// ExtractionSchema is the JSON schema for contract analysis output.
var ExtractionSchema = map[string]any{
	"type": "json_schema",
	"json_schema": map[string]any{
		"name":   "contract_analysis",
		"strict": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contract_title": map[string]any{
					"type":        []string{"string", "null"},
					"description": "The main title of the contract document, if present",
				},
				"effective_date": map[string]any{
					"type":        []string{"string", "null"},
					"format":      "date",
					"description": "The date the contract becomes legally effective (YYYY-MM-DD)",
				},
				"expiration_date": map[string]any{
					"type":        []string{"string", "null"},
					"format":      "date",
					"description": "The date the contract term ends, if specified (YYYY-MM-DD)",
				},
				"execution_date": map[string]any{
					"type":        []string{"string", "null"},
					"format":      "date",
					"description": "The date the contract was signed by the parties (YYYY-MM-DD)",
				},
				"contract_id_reference": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Any unique identifier or reference number for the contract",
				},
				"parties": map[string]any{
					"type":        "array",
					"items":       partySchema,
					"description": "All identified parties involved in the contract",
				},
				"primary_software_products": map[string]any{
					"type":        "array",
					"items":       softwareProductSchema,
					"description": "Details of the main software/products being licensed or sold",
				},
				"included_services": map[string]any{
					"type":        "array",
					"items":       serviceSchema,
					"description": "Details of services included (e.g., maintenance, support, training)",
				},
				"intended_use_case_purpose": map[string]any{
					"type":        []string{"string", "null"},
					"description": "The stated purpose or intended use of the software/service, if mentioned",
				},
				"total_contract_value_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Text describing the total financial value or pricing structure (e.g., '$50,000 USD', 'See Schedule B')",
				},
				"payment_milestones": map[string]any{
					"type":        "array",
					"items":       paymentMilestoneSchema,
					"description": "Breakdown of payment amounts, schedules, and currencies",
				},
				"penalty_clauses": map[string]any{
					"type":        "array",
					"items":       penaltySchema,
					"description": "Specific penalties mentioned (e.g., for late payment, non-compliance)",
				},
				"discounts_credits_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Mention of any discounts or credits offered",
				},
				"license_type_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Description of the license grant (e.g., Perpetual, Subscription, SaaS, Term-based)",
				},
				"usage_limits_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Description of limits on users, devices, cores, etc.",
				},
				"territory_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Geographic scope where the license is valid (e.g., Worldwide, North America, India)",
				},
				"transferability_sublicensing_allowed": map[string]any{
					"type":        []string{"boolean", "null"},
					"description": "Is transferring or sub-licensing the license permitted?",
				},
				"support_hours_availability": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Stated hours or availability of support (e.g., '9-5 EST', '24/7')",
				},
				"service_level_agreements": map[string]any{
					"type":        "array",
					"items":       slaSchema,
					"description": "Specific, measurable SLA commitments (e.g., response times, uptime)",
				},
				"maintenance_schedule_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Information regarding scheduled maintenance windows or procedures",
				},
				"key_deliverables": map[string]any{
					"type":        "array",
					"items":       deliverableSchema,
					"description": "Specific items or milestones to be delivered under the contract",
				},
				"insurance_requirements_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Description of any required insurance coverage levels or types",
				},
				"data_privacy_clause_summary": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Summary of clauses related to data protection, GDPR, CCPA, HIPAA, etc.",
				},
				"ip_ownership_description": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Statement regarding ownership of intellectual property created or licensed",
				},
			},
			"required":             []string{},
			"additionalProperties": false,
		},
	},
}

// anyOfNull wraps an object schema so the field may also be null.
func anyOfNull(objSchema map[string]any, description string) map[string]any {
	return map[string]any{
		"anyOf": []any{
			objSchema,
			map[string]any{"type": "null"},
		},
		"description": description,
	}
}

// SchemaJSON returns the wrapped schema document ({"name","strict","schema"})
// as raw JSON for provider response formats and local validation.
func SchemaJSON() json.RawMessage {
	raw, err := json.Marshal(ExtractionSchema["json_schema"])
	if err != nil {
		// The schema is a static literal; failure to marshal it is a
		// programming error.
		panic(err)
	}
	return raw
}
