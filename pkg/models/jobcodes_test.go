package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalJobCode(t *testing.T) {
	tests := []struct {
		title string
		want  JobCode
	}{
		{"Store Manager", JobStoreManager},
		{"STORE MANAGER", JobStoreManager},
		{"Assistant Manager", JobAssistantManager},
		{"Asst Manager", JobAssistantManager},
		{"Team Lead", JobTeamLead},
		{"Shift Lead", JobTeamLead},
		{"Floor Supervisor", JobTeamLead},
		{"Cashier", JobCashier},
		{"Head Cashier", JobCashier},
		{"Apparel Processor", JobApparelProcessor},
		{"Donation Pricer", JobDonationPricer},
		{"Pricing Associate", JobDonationPricer},
		{"Donation Door Greeter", JobDonationGreeter},
		{"Greeter", JobDonationGreeter},
		{"Donation Door Attendant", JobDonationGreeter},
		{"Manager", JobStoreManager},
		{"Warehouse Associate", JobUnknown},
		{"", JobUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalJobCode(tt.title), "title %q", tt.title)
	}
}

func TestIsManager(t *testing.T) {
	assert.True(t, IsManager(JobStoreManager))
	assert.True(t, IsManager(JobAssistantManager))
	assert.True(t, IsManager(JobTeamLead))
	assert.False(t, IsManager(JobCashier))
	assert.False(t, IsManager(JobUnknown))
}

func TestEmployeeSchedulable(t *testing.T) {
	e := Employee{Active: true}
	assert.True(t, e.Schedulable())

	e.Hidden = true
	assert.False(t, e.Schedulable())

	e = Employee{Active: false}
	assert.False(t, e.Schedulable())
}

func TestTimeOffApproved(t *testing.T) {
	assert.True(t, TimeOffRequest{Status: "approved"}.Approved())
	assert.False(t, TimeOffRequest{Status: "pending"}.Approved())
	assert.False(t, TimeOffRequest{Status: "denied"}.Approved())
}
