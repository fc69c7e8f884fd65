package models

// AgeGroup is one of five fixed buckets classifying a child for milestone
// eligibility. It is computed from the date of birth once at registration and
// kept as-is afterwards.
type AgeGroup string

const (
	AgeGroup0To3  AgeGroup = "0-3"
	AgeGroup4To6  AgeGroup = "4-6"
	AgeGroup7To8  AgeGroup = "7-8"
	AgeGroup9To12 AgeGroup = "9-12"
	AgeGroup13Up  AgeGroup = "13+"
)

func (g AgeGroup) Valid() bool {
	switch g {
	case AgeGroup0To3, AgeGroup4To6, AgeGroup7To8, AgeGroup9To12, AgeGroup13Up:
		return true
	}
	return false
}

type Child struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	DOB               string   `json:"dob"` // "2006-01-02"
	Gender            string   `json:"gender,omitempty"`
	MedicalConditions string   `json:"medicalConditions,omitempty"`
	Allergies         string   `json:"allergies,omitempty"`
	AgeGroup          AgeGroup `json:"ageGroup"`
	ParentID          string   `json:"parentId"`
}

// ChildRegistration is the parent-entered registration form. AgeGroup is not
// part of the form, it is derived from DOB before the request is sent.
type ChildRegistration struct {
	Name              string `json:"name" validate:"required" binding:"required"`
	DOB               string `json:"dob" validate:"required" binding:"required"`
	Gender            string `json:"gender" validate:"omitempty,oneof=male female other" binding:"omitempty,oneof=male female other"`
	MedicalConditions string `json:"medicalConditions"`
	Allergies         string `json:"allergies"`
}
