package utils

import (
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/dto/requests"
	"regexp"
	"strings"
)

var (
	notNameCharactersRegex = regexp.MustCompile(constvars.RegexNotNameCharacters)
	notDigitsRegex         = regexp.MustCompile(constvars.RegexNotDigits)
	multipleSpacesRegex    = regexp.MustCompile(`\s+`)
)

// SanitizeName keeps ASCII letters, Latin-1 accented letters and spaces.
func SanitizeName(name string) string {
	cleaned := notNameCharactersRegex.ReplaceAllString(name, "")
	return strings.TrimSpace(multipleSpacesRegex.ReplaceAllString(cleaned, " "))
}

// SanitizeSusNumber reduces a SUS/CNS number to at most 15 digits.
func SanitizeSusNumber(susNumber string) string {
	digits := notDigitsRegex.ReplaceAllString(susNumber, "")
	if len(digits) > constvars.SusNumberMaxLength {
		digits = digits[:constvars.SusNumberMaxLength]
	}
	return digits
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = SanitizeName(input.Name)
	input.SusNumber = SanitizeSusNumber(input.SusNumber)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Name = SanitizeName(input.Name)
	input.SusNumber = SanitizeSusNumber(input.SusNumber)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
}

func SanitizeCreateStaffRequest(input *requests.CreateStaff) {
	input.Name = SanitizeName(input.Name)
	input.SusNumber = SanitizeSusNumber(input.SusNumber)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeUpdateStaffRequest(input *requests.UpdateStaff) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = SanitizeName(input.Name)
	input.SusNumber = SanitizeSusNumber(input.SusNumber)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreateConsultationRequest(input *requests.CreateConsultation) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Diagnosis.CID = strings.ToUpper(strings.TrimSpace(input.Diagnosis.CID))
	input.Diagnosis.Description = strings.TrimSpace(input.Diagnosis.Description)
	input.Prescription.Medication = strings.TrimSpace(input.Prescription.Medication)
	input.Prescription.Dosage = strings.TrimSpace(input.Prescription.Dosage)
}

func SanitizeEvaluateProtocolRequest(input *requests.EvaluateProtocol) {
	input.Pathway = strings.ToLower(strings.TrimSpace(input.Pathway))
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	if input.Congenital != nil {
		input.Congenital.PrincipalCID = strings.ToUpper(strings.TrimSpace(input.Congenital.PrincipalCID))
	}
	if input.Acquired != nil {
		input.Acquired.Stage = strings.ToLower(strings.TrimSpace(input.Acquired.Stage))
	}
}

func SanitizeApplyProtocolRequest(input *requests.ApplyProtocol) {
	SanitizeEvaluateProtocolRequest(&input.Input)
	input.Draft.Diagnosis.CID = strings.ToUpper(strings.TrimSpace(input.Draft.Diagnosis.CID))
	input.Draft.Diagnosis.Description = strings.TrimSpace(input.Draft.Diagnosis.Description)
}
