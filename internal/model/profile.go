package model

import "time"

// Profile groups the per-category sections of a user record. Every section is
// optional; partial updates touch only the sections present in the input.
type Profile struct {
	Contact          *Contact       `json:"contact,omitempty"`
	EducationList    []Education    `json:"educationList,omitempty"`
	WorkList         []Work         `json:"workList,omitempty"`
	RelationshipList []Relationship `json:"relationshipList,omitempty"`
	Identity         *Identity      `json:"identity,omitempty"`
	ReligionsList    []Religion     `json:"religionsList,omitempty"`
	TravelsList      []Travel       `json:"travelsList,omitempty"`
	Health           *Health        `json:"health,omitempty"`
	ActivitiesList   []Activity     `json:"activitiesList,omitempty"`
	GivingList       []Giving       `json:"givingList,omitempty"`
	Finances         *Finances      `json:"finances,omitempty"`
}

// Contact holds contact details. Address and Age are derived: computed from
// the structured fields when unset, preserved once set.
type Contact struct {
	Username    *string    `json:"username,omitempty"`
	Email       *string    `json:"email,omitempty"`
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	Address1    *string    `json:"address1,omitempty"`
	Address2    *string    `json:"address2,omitempty"`
	City        *string    `json:"city,omitempty"`
	State       *string    `json:"state,omitempty"`
	PostalCode  *string    `json:"postalCode,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Age         *int       `json:"age,omitempty"`
	HomePhone   *string    `json:"homePhone,omitempty"`
	MobilePhone *string    `json:"mobilePhone,omitempty"`
	Website     *string    `json:"website,omitempty"`
}

// Overview carries free-text and per-category summaries.
type Overview struct {
	Location      *string          `json:"location,omitempty"`
	Education     *CategorySummary `json:"education,omitempty"`
	Work          *CategorySummary `json:"work,omitempty"`
	Relationships *CategorySummary `json:"relationships,omitempty"`
	Identity      *CategorySummary `json:"identity,omitempty"`
	Religion      *CategorySummary `json:"religion,omitempty"`
	Travel        *CategorySummary `json:"travel,omitempty"`
	Health        *CategorySummary `json:"health,omitempty"`
	Hobbies       *CategorySummary `json:"hobbies,omitempty"`
	Giving        *CategorySummary `json:"giving,omitempty"`
	Finances      *CategorySummary `json:"finances,omitempty"`
	Housing       *CategorySummary `json:"housing,omitempty"`
	Goals         *string          `json:"goals,omitempty"`
	Achievements  *string          `json:"achievements,omitempty"`
	Summary       *string          `json:"summary,omitempty"`
}

// CategorySummary is the user's own assessment of one life category.
type CategorySummary struct {
	Satisfaction          string `json:"satisfaction,omitempty"`
	Importance            string `json:"importance,omitempty"`
	ChangeGoalDescription string `json:"changeGoalDescription,omitempty"`
	ProfileSummary        string `json:"profileSummary,omitempty"`
	GoalsSummary          string `json:"goalsSummary,omitempty"`
	AchievementsSummary   string `json:"achievementsSummary,omitempty"`
}

type Education struct {
	School             string     `json:"school"`
	DegreeType         string     `json:"degreeType,omitempty"`
	DegreeName         string     `json:"degreeName,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	Country            string     `json:"country,omitempty"`
	Status             string     `json:"status,omitempty"`
	CompletionDate     *time.Time `json:"completionDate,omitempty"`
	Grade              string     `json:"grade,omitempty"`
	GradeScale         string     `json:"gradeScale,omitempty"`
	Description        string     `json:"description,omitempty"`
	PersonalImportance string     `json:"personalImportance,omitempty"`
	CareerImportance   string     `json:"careerImportance,omitempty"`
}

type Work struct {
	WorkTitle   string     `json:"workTitle"`
	Employer    string     `json:"employer,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	CareerLevel string     `json:"careerLevel,omitempty"`
	Wage        string     `json:"wage,omitempty"`
	WageScale   string     `json:"wageScale,omitempty"`
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	Country     string     `json:"country,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      string     `json:"status,omitempty"`
	Description string     `json:"description,omitempty"`
}

type Relationship struct {
	Name                   string     `json:"name"`
	DateOfBirth            *time.Time `json:"dateOfBirth,omitempty"`
	RelationshipType       string     `json:"relationshipType,omitempty"`
	StartDate              *time.Time `json:"startDate,omitempty"`
	EndDate                *time.Time `json:"endDate,omitempty"`
	InteractionFrequency   string     `json:"interactionFrequency,omitempty"`
	Status                 string     `json:"status,omitempty"`
	RelationshipImportance string     `json:"relationshipImportance,omitempty"`
	Description            string     `json:"description,omitempty"`
}

type Identity struct {
	Gender                string `json:"gender,omitempty"`
	Sexuality             string `json:"sexuality,omitempty"`
	RelationshipStatus    string `json:"relationshipStatus,omitempty"`
	Nationality           string `json:"nationality,omitempty"`
	CoreValues            string `json:"coreValues,omitempty"`
	TechnologicalLiteracy string `json:"technologicalLiteracy,omitempty"`
	PoliticalValues       string `json:"politicalValues,omitempty"`
}

type Religion struct {
	Religion    string `json:"religion"`
	Affiliation string `json:"affiliation,omitempty"`
	Practice    string `json:"practice,omitempty"`
	Importance  string `json:"importance,omitempty"`
	Description string `json:"description,omitempty"`
}

type Travel struct {
	Destination string     `json:"destination"`
	Country     string     `json:"country,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Purpose     string     `json:"purpose,omitempty"`
	Description string     `json:"description,omitempty"`
}

type Health struct {
	HeightCm       *int   `json:"heightCm,omitempty"`
	WeightKg       *int   `json:"weightKg,omitempty"`
	ActivityLevel  string `json:"activityLevel,omitempty"`
	DietQuality    string `json:"dietQuality,omitempty"`
	SleepQuality   string `json:"sleepQuality,omitempty"`
	StressLevel    string `json:"stressLevel,omitempty"`
	Conditions     string `json:"conditions,omitempty"`
	Description    string `json:"description,omitempty"`
}

type Activity struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	SkillLevel  string `json:"skillLevel,omitempty"`
	Importance  string `json:"importance,omitempty"`
	Description string `json:"description,omitempty"`
}

type Giving struct {
	Organization string     `json:"organization"`
	GivingType   string     `json:"givingType,omitempty"`
	Amount       string     `json:"amount,omitempty"`
	Frequency    string     `json:"frequency,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	Description  string     `json:"description,omitempty"`
}

type Finances struct {
	IncomeRange     string `json:"incomeRange,omitempty"`
	SavingsRange    string `json:"savingsRange,omitempty"`
	DebtRange       string `json:"debtRange,omitempty"`
	HomeOwnership   string `json:"homeOwnership,omitempty"`
	RetirementPlan  string `json:"retirementPlan,omitempty"`
	FinancialGoals  string `json:"financialGoals,omitempty"`
	Description     string `json:"description,omitempty"`
}
