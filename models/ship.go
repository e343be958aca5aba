package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipRow is the GORM model for one vessel shipment as persisted in Postgres.
// The numeric columns are text in the legacy table (imported from
// spreadsheets), so they stay strings here and are coerced on read.
type ShipRow struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VesselName  string    `gorm:"type:varchar(256);not null" json:"vessel_name"`
	ProcessCode string    `gorm:"type:varchar(64)" json:"process_code"`
	// Quantity is the shipped mass. Legacy rows mix tonnes and kilograms.
	Quantity    string `gorm:"type:varchar(64)" json:"quantity"`
	Destination string `gorm:"type:varchar(256)" json:"destination"`
	// DepartureDate is the display date as entered; may be empty.
	DepartureDate string `gorm:"type:varchar(32)" json:"departure_date"`
	LotNumber     string `gorm:"type:varchar(64)" json:"lot_number"`
	PermitNumber  string `gorm:"type:varchar(64)" json:"permit_number"`
	// ContractValue and FreightValue are sometimes stored as the true
	// value multiplied by 10^5 (legacy import artifact).
	ContractValue string `gorm:"type:varchar(64)" json:"contract_value"`
	FreightValue  string `gorm:"type:varchar(64)" json:"freight_value"`
	// Date is the calendar day used to bucket records for display.
	Date      time.Time      `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName keeps the legacy table name.
func (ShipRow) TableName() string { return "ship_schedules" }

// ShipRecord is the normalized read-only projection returned by the API.
// All numeric fields are in canonical scale: tonnes for mass, non-rescaled
// values for codes.
type ShipRecord struct {
	ID            string   `json:"id"`
	VesselName    string   `json:"vesselName"`
	ProcessCode   string   `json:"processCode"`
	QuantityTons  float64  `json:"quantityTons"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departureDate"`
	LotNumber     *float64 `json:"lotNumber"`
	PermitNumber  *float64 `json:"permitNumber"`
	ContractValue *float64 `json:"contractValue"`
	FreightValue  *float64 `json:"freightValue"`
	Date          string   `json:"date"`
}

// ShipsByDate maps an ISO date key (YYYY-MM-DD) to the records scheduled on
// that day. Ordering within a day follows the underlying query order.
type ShipsByDate map[string][]ShipRecord
