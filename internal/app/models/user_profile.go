package models

type UserProfile struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	Owner     string           `json:"owner" bson:"owner"`
	Identity  ProfileIdentity  `json:"identity" bson:"identity"`
	Contact   ProfileContact   `json:"contact" bson:"contact"`
	Documents ProfileDocuments `json:"documents" bson:"documents"`
	TimeModel `bson:",inline"`
}

// Unset profile values stay nil so they can be told apart from empty answers.
type ProfileIdentity struct {
	Name              *string `json:"name,omitempty" bson:"name,omitempty"`
	Age               *int    `json:"age,omitempty" bson:"age,omitempty"`
	EducationLevel    *string `json:"educationLevel,omitempty" bson:"educationLevel,omitempty"`
	FieldOfStudy      *string `json:"fieldOfStudy,omitempty" bson:"fieldOfStudy,omitempty"`
	GraduationYear    *string `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`
	OccupationStatus  *string `json:"occupationStatus,omitempty" bson:"occupationStatus,omitempty"`
	RoleLevel         *string `json:"roleLevel,omitempty" bson:"roleLevel,omitempty"`
	YearsOfExperience *string `json:"yearsOfExperience,omitempty" bson:"yearsOfExperience,omitempty"`
	Country           *string `json:"country,omitempty" bson:"country,omitempty"`
	Province          *string `json:"province,omitempty" bson:"province,omitempty"`
	City              *string `json:"city,omitempty" bson:"city,omitempty"`
}

type ProfileContact struct {
	Email            *string  `json:"email,omitempty" bson:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Languages        []string `json:"languages,omitempty" bson:"languages,omitempty"`
	PreferredContact *string  `json:"preferredContact,omitempty" bson:"preferredContact,omitempty"`
}

type ProfileDocuments struct {
	OrganizationType *string  `json:"organizationType,omitempty" bson:"organizationType,omitempty"`
	Industry         []string `json:"industry,omitempty" bson:"industry,omitempty"`
	Department       *string  `json:"department,omitempty" bson:"department,omitempty"`
	Hobbies          []string `json:"hobbies,omitempty" bson:"hobbies,omitempty"`
	ResearchConsent  *bool    `json:"researchConsent,omitempty" bson:"researchConsent,omitempty"`
}

func NewUserProfile(owner string) *UserProfile {
	profile := &UserProfile{Owner: owner}
	profile.SetCreatedAtUpdatedAt()
	return profile
}
