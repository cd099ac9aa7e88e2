package contract

// Analysis is the validated result of a contract extraction call.
//
// Optional scalar fields are pointers and serialize as explicit nulls when
// absent. Collection fields are never nil after parsing; an empty collection
// serializes as [] rather than a missing key. Element order within a
// collection reflects the provider's output order and carries no meaning.
type Analysis struct {
	// Basic metadata
	ContractTitle       *string `json:"contract_title" yaml:"contract_title"`
	EffectiveDate       *Date   `json:"effective_date" yaml:"effective_date"`
	ExpirationDate      *Date   `json:"expiration_date" yaml:"expiration_date"`
	ExecutionDate       *Date   `json:"execution_date" yaml:"execution_date"`
	ContractIDReference *string `json:"contract_id_reference" yaml:"contract_id_reference"`

	// Party information
	Parties []Party `json:"parties" yaml:"parties"`

	// Subject and scope
	PrimarySoftwareProducts []SoftwareProduct `json:"primary_software_products" yaml:"primary_software_products"`
	IncludedServices        []Service         `json:"included_services" yaml:"included_services"`
	IntendedUseCasePurpose  *string           `json:"intended_use_case_purpose" yaml:"intended_use_case_purpose"`

	// Commercial terms
	TotalContractValueDescription *string            `json:"total_contract_value_description" yaml:"total_contract_value_description"`
	PaymentMilestones             []PaymentMilestone `json:"payment_milestones" yaml:"payment_milestones"`
	PenaltyClauses                []Penalty          `json:"penalty_clauses" yaml:"penalty_clauses"`
	DiscountsCreditsDescription   *string            `json:"discounts_credits_description" yaml:"discounts_credits_description"`

	// Licensing terms
	LicenseTypeDescription             *string `json:"license_type_description" yaml:"license_type_description"`
	UsageLimitsDescription             *string `json:"usage_limits_description" yaml:"usage_limits_description"`
	TerritoryDescription               *string `json:"territory_description" yaml:"territory_description"`
	TransferabilitySublicensingAllowed *bool   `json:"transferability_sublicensing_allowed" yaml:"transferability_sublicensing_allowed"`

	// Service level commitments
	SupportHoursAvailability       *string `json:"support_hours_availability" yaml:"support_hours_availability"`
	ServiceLevelAgreements         []SLA   `json:"service_level_agreements" yaml:"service_level_agreements"`
	MaintenanceScheduleDescription *string `json:"maintenance_schedule_description" yaml:"maintenance_schedule_description"`

	// Deliverables and timelines
	KeyDeliverables []Deliverable `json:"key_deliverables" yaml:"key_deliverables"`

	// Risk and compliance
	InsuranceRequirementsDescription *string `json:"insurance_requirements_description" yaml:"insurance_requirements_description"`
	DataPrivacyClauseSummary         *string `json:"data_privacy_clause_summary" yaml:"data_privacy_clause_summary"`
	IPOwnershipDescription           *string `json:"ip_ownership_description" yaml:"ip_ownership_description"`
}

// Address is a physical or mailing address attached to a party.
type Address struct {
	Street        *string `json:"street" yaml:"street"`
	City          *string `json:"city" yaml:"city"`
	StateProvince *string `json:"state_province" yaml:"state_province"`
	PostalCode    *string `json:"postal_code" yaml:"postal_code"`
	Country       *string `json:"country" yaml:"country"`
}

// Party is one contracting party.
type Party struct {
	Name                    string   `json:"name" yaml:"name"`
	Role                    *string  `json:"role" yaml:"role"`
	Address                 *Address `json:"address" yaml:"address"`
	AuthorizedSignatoryName *string  `json:"authorized_signatory_name" yaml:"authorized_signatory_name"`
	FullTextReference       *string  `json:"full_text_reference" yaml:"full_text_reference"`
}

// SoftwareProduct is a licensed or sold software product.
type SoftwareProduct struct {
	Name            string   `json:"name" yaml:"name"`
	Version         *string  `json:"version" yaml:"version"`
	ModulesFeatures []string `json:"modules_features" yaml:"modules_features"`
	Description     *string  `json:"description" yaml:"description"`
}

// Service is a bundled service such as maintenance, support, or training.
type Service struct {
	ServiceType string  `json:"service_type" yaml:"service_type"`
	Description *string `json:"description" yaml:"description"`
}

// PaymentMilestone is one entry in the payment schedule.
type PaymentMilestone struct {
	Description        string   `json:"description" yaml:"description"`
	Amount             *float64 `json:"amount" yaml:"amount"`
	Currency           *string  `json:"currency" yaml:"currency"`
	DueDateDescription *string  `json:"due_date_description" yaml:"due_date_description"`
	DueDate            *Date    `json:"due_date" yaml:"due_date"`
}

// Penalty is a penalty clause and its trigger condition.
type Penalty struct {
	Condition          string `json:"condition" yaml:"condition"`
	PenaltyDescription string `json:"penalty_description" yaml:"penalty_description"`
}

// SLA is a measurable service level commitment.
type SLA struct {
	Metric     string  `json:"metric" yaml:"metric"`
	Commitment string  `json:"commitment" yaml:"commitment"`
	Remedy     *string `json:"remedy" yaml:"remedy"`
}

// Deliverable is an item or milestone to be delivered under the contract.
type Deliverable struct {
	Description               string  `json:"description" yaml:"description"`
	DueDateDescription        *string `json:"due_date_description" yaml:"due_date_description"`
	DueDate                   *Date   `json:"due_date" yaml:"due_date"`
	AcceptanceCriteriaSummary *string `json:"acceptance_criteria_summary" yaml:"acceptance_criteria_summary"`
}

// Normalize ensures collection fields are non-nil so they serialize as
// explicit empty arrays.
func (a *Analysis) Normalize() {
	if a.Parties == nil {
		a.Parties = []Party{}
	}
	if a.PrimarySoftwareProducts == nil {
		a.PrimarySoftwareProducts = []SoftwareProduct{}
	}
	for i := range a.PrimarySoftwareProducts {
		if a.PrimarySoftwareProducts[i].ModulesFeatures == nil {
			a.PrimarySoftwareProducts[i].ModulesFeatures = []string{}
		}
	}
	if a.IncludedServices == nil {
		a.IncludedServices = []Service{}
	}
	if a.PaymentMilestones == nil {
		a.PaymentMilestones = []PaymentMilestone{}
	}
	if a.PenaltyClauses == nil {
		a.PenaltyClauses = []Penalty{}
	}
	if a.ServiceLevelAgreements == nil {
		a.ServiceLevelAgreements = []SLA{}
	}
	if a.KeyDeliverables == nil {
		a.KeyDeliverables = []Deliverable{}
	}
}
