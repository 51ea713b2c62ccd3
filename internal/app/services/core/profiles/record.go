package profiles

import "panel-service/internal/app/models"

// RecordOf projects a stored profile onto the categories of DefaultSchema.
// Unset values keep their nil pointer or slice so IsFilled reports them.
func RecordOf(profile *models.UserProfile) SectionedRecord {
	identity := profile.Identity
	contact := profile.Contact
	documents := profile.Documents

	return SectionedRecord{
		CategoryIdentity: {
			"name":              identity.Name,
			"age":               identity.Age,
			"educationLevel":    identity.EducationLevel,
			"fieldOfStudy":      identity.FieldOfStudy,
			"graduationYear":    identity.GraduationYear,
			"occupationStatus":  identity.OccupationStatus,
			"roleLevel":         identity.RoleLevel,
			"yearsOfExperience": identity.YearsOfExperience,
			"country":           identity.Country,
			"province":          identity.Province,
			"city":              identity.City,
		},
		CategoryContact: {
			"email":            contact.Email,
			"phone":            contact.Phone,
			"languages":        contact.Languages,
			"preferredContact": contact.PreferredContact,
		},
		CategoryDocuments: {
			"organizationType": documents.OrganizationType,
			"industry":         documents.Industry,
			"department":       documents.Department,
			"hobbies":          documents.Hobbies,
			"researchConsent":  documents.ResearchConsent,
		},
	}
}
