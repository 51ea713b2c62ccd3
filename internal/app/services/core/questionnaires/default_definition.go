package questionnaires

import (
	"fmt"
	"time"
)

const minGraduationYear = 1950

var (
	jobTitles = []string{
		"Owner / Founder",
		"C-Level Executive",
		"Vice President",
		"Director",
		"Manager",
		"Senior Individual Contributor",
		"Individual Contributor",
		"Consultant / Freelancer",
		"Student / Intern",
		OtherOption,
	}
	seniorityLevels = []string{
		"Executive Leadership",
		"Senior Management",
		"Middle Management",
		"Senior Professional",
		"Mid-Level Professional",
		"Junior / Entry Level",
		"Student / Intern",
	}
	departments = []string{
		"Executive / Strategy",
		"Sales",
		"Marketing",
		"Product",
		"Engineering / IT",
		"Operations",
		"Finance",
		"Human Resources",
		"Legal / Compliance",
		"Customer Success",
		OtherOption,
	}

	companyTypes = []string{
		"Public Company",
		"Private Company",
		"Startup",
		"Small Business",
		"Family Business",
		"Non-Profit Organization",
		"Government Agency",
		"Educational Institution",
		"Self-Employed / Freelance",
		OtherOption,
	}
	industries = []string{
		"Technology & Software",
		"Financial Services",
		"Healthcare & Life Sciences",
		"Professional Services",
		"Manufacturing & Industrial",
		"Retail & E-commerce",
		"Media & Communications",
		"Education",
		"Government & Non-Profit",
		OtherOption,
	}
	yearsOptions = []string{
		"0–2 years",
		"3–7 years",
		"8–15 years",
		"16+ years",
	}
	companySizes = []string{
		"1–10",
		"11–50",
		"51–200",
		"201–1,000",
		"1,001–5,000",
		"5,000+",
	}
	revenueOptions = []string{
		"Less than $1 million",
		"$1 million – $10 million",
		"$10 million – $50 million",
		"$50 million – $250 million",
		"$250 million – $1 billion",
		"Over $1 billion",
		"Prefer not to say",
	}
	marketOptions = []string{
		"Local / Regional",
		"National",
		"International / Multi-regional",
		"Global",
	}

	joinReasons = []string{
		"Learn from peers and industry experts",
		"Get help with specific business challenges",
		"Stay current on industry trends",
		"Build my professional network",
		"Find partners or collaborators",
		"Share my expertise",
	}
	challenges = []string{
		"Scaling operations",
		"Team alignment and collaboration",
		"Technology adoption",
		"Revenue growth and pipeline",
		"Talent retention and team performance",
		"Compliance and risk management",
		OtherOption,
	}
	contentTypes = []string{
		"Case studies and real-world examples",
		"Expert discussions and Q&A",
		"Templates and frameworks",
		"Industry data and benchmarks",
		"Live events and webinars",
		"Peer-to-peer problem solving",
	}

	educationLevels = []string{
		"High School Diploma or Equivalent",
		"Bachelor's Degree",
		"Master's Degree",
		OtherOption,
	}
	fieldsOfStudy = []string{
		"Business Administration / Management",
		"Engineering (Civil, Mechanical, Electrical, etc.)",
		"Computer Science / Information Technology",
		"Medicine / Healthcare / Nursing",
		"Natural Sciences (Biology, Chemistry, Physics, etc.)",
		"Social Sciences (Psychology, Sociology, Economics, etc.)",
		"Humanities (Literature, History, Philosophy, etc.)",
		"Education / Teaching",
		"Law / Legal Studies",
		"Arts / Design / Architecture",
		"Agriculture / Environmental Science",
		OtherOption,
	}
	occupationStatuses = []string{
		"Employed Full-time",
		"Employed Part-time",
		"Self-employed / Entrepreneur",
		"Business Owner",
		"Student",
		"Unemployed",
		"Retired",
		OtherOption,
	}

	languages = []string{
		"English",
		"Spanish",
		"Mandarin Chinese",
		"French",
		"German",
		"Japanese",
		"Korean",
		"Portuguese",
		"Russian",
		"Arabic",
		"Hindi",
		"Italian",
		"Dutch",
		OtherOption,
	}
	hobbies = []string{
		"Skills & Micro-Learning (How-to guides & productivity)",
		"Career Pathing (Advancement & management tips)",
		"Work-Life Integration (Mental health & remote work)",
		"Internal Networking (Cross-department mixers)",
		"Recognition & Feedback (Celebrating wins)",
		"Company Culture (Book clubs & fitness)",
		OtherOption,
	}
	consentOptions = []string{
		"Yes, I agree to take part in research studies",
		"No, not at this time",
	}
	contactOptions = []string{
		"Email",
		"Phone",
		"SMS",
		"No preference",
	}
)

// DefaultDefinition is the five-step B2B onboarding survey.
func DefaultDefinition() *Definition {
	def, err := NewDefinition(
		Step{Key: "role", Title: "Your Role", Fields: []FieldDefinition{
			{Name: "jobTitle", PayloadKey: "roleLevel", Label: "Job title", Kind: KindSingleChoice, Options: jobTitles, AllowOther: true, Required: true, RequiredMessage: "Please select your job title."},
			{Name: "seniorityLevel", Label: "Seniority level", Kind: KindSingleChoice, Options: seniorityLevels, Required: true, RequiredMessage: "Please select your seniority level."},
			{Name: "department", Label: "Department", Kind: KindSingleChoice, Options: departments, AllowOther: true, Required: true, RequiredMessage: "Please select your department."},
		}},
		Step{Key: "company", Title: "Your Company", Fields: []FieldDefinition{
			{Name: "companyType", PayloadKey: "organizationType", Label: "Company type", Kind: KindSingleChoice, Options: companyTypes, AllowOther: true, Required: true, RequiredMessage: "Please select your company type."},
			{Name: "industries", PayloadKey: "industry", Label: "Industries", Kind: KindMultiChoice, Options: industries, AllowOther: true, Required: true, RequiredMessage: "Please select at least one industry."},
			{Name: "yearsExperience", Label: "Years of experience", Kind: KindSingleChoice, Options: yearsOptions},
			{Name: "companySize", Label: "Company size", Kind: KindSingleChoice, Options: companySizes, Required: true, RequiredMessage: "Please select your company size."},
			{Name: "annualRevenue", Label: "Annual revenue", Kind: KindSingleChoice, Options: revenueOptions},
			{Name: "primaryMarket", Label: "Primary market", Kind: KindSingleChoice, Options: marketOptions, Required: true, RequiredMessage: "Please select your primary market."},
		}},
		Step{Key: "goals", Title: "Your Goals", Fields: []FieldDefinition{
			{Name: "joinReason", Label: "Primary reason for joining", Kind: KindSingleChoice, Options: joinReasons, Required: true, RequiredMessage: "Please select your primary reason for joining."},
			{Name: "biggestChallenge", Label: "Biggest challenge", Kind: KindSingleChoice, Options: challenges, AllowOther: true, Required: true, RequiredMessage: "Please select your biggest challenge."},
			{Name: "contentPreferences", PayloadKey: "contentPreference", Label: "Content types", Kind: KindMultiChoice, Options: contentTypes, Required: true, RequiredMessage: "Please select at least one content type."},
		}},
		Step{Key: "background", Title: "Background & Location", Fields: []FieldDefinition{
			{Name: "educationLevel", Label: "Education level", Kind: KindSingleChoice, Options: educationLevels, AllowOther: true, Required: true, RequiredMessage: "Please select your education level."},
			{Name: "fieldOfStudy", Label: "Field of study", Kind: KindSingleChoice, Options: fieldsOfStudy, AllowOther: true, Required: true, RequiredMessage: "Please select your field of study."},
			{Name: "graduationYear", Label: "Graduation year", Kind: KindNumericText, Required: true, RequiredMessage: "Please enter your graduation year.", Hint: fmt.Sprintf("%d-%d", minGraduationYear, time.Now().Year())},
			{Name: "occupationStatus", Label: "Occupation status", Kind: KindSingleChoice, Options: occupationStatuses, AllowOther: true, Required: true, RequiredMessage: "Please select your occupation status."},
			{Name: "country", Label: "Country", Kind: KindFreeText, Lookup: LookupCountry, Required: true, RequiredMessage: "Please select your country.", InvalidMessage: "Please select a valid country from the list."},
			{Name: "provinceState", Label: "Province / State", Kind: KindFreeText, Lookup: LookupState, Required: true, RequiredMessage: "Please select your province/state.", InvalidMessage: "Please select a valid province/state from the list."},
			{Name: "city", Label: "City", Kind: KindFreeText, Lookup: LookupCity, Required: true, RequiredMessage: "Please select your city.", InvalidMessage: "Please select a valid city from the list."},
		}},
		Step{Key: "preferences", Title: "Preferences & Consent", Fields: []FieldDefinition{
			{Name: "languages", Label: "Languages", Kind: KindMultiChoice, Options: languages, AllowOther: true, Required: true, RequiredMessage: "Please select at least one language."},
			{Name: "hobbies", Label: "Interests", Kind: KindMultiChoice, Options: hobbies, AllowOther: true, Required: true, RequiredMessage: "Please select at least one interest."},
			{Name: "participationConsent", Label: "Research participation", Kind: KindSingleChoice, Options: consentOptions},
			{Name: "contactPreference", Label: "Contact preference", Kind: KindSingleChoice, Options: contactOptions},
		}},
	)
	if err != nil {
		panic(err)
	}
	return def
}
