package model

import "time"

// Go models that match the resume.schema.json used for validation and rendering.

type PersonalDetails struct {
	FullName     string `json:"fullName"`
	JobTitle     string `json:"jobTitle"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Linkedin     string `json:"linkedin,omitempty"`
	Website      string `json:"website,omitempty"`
	Github       string `json:"github,omitempty"`
	Telegram     string `json:"telegram,omitempty"`
	Discord      string `json:"discord,omitempty"`
	Location     string `json:"location,omitempty"`
	Summary      string `json:"summary,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Age          int    `json:"age,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

type WorkExperience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
	Description  string   `json:"description,omitempty"`
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"fieldOfStudy,omitempty"`
	Institution    string `json:"institution"`
	Location       string `json:"location,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type Skills struct {
	Technical []string        `json:"technical"`
	Soft      []string        `json:"soft"`
	Languages []LanguageSkill `json:"languages"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	Github       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
}

type Certification struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	IssueDate      string   `json:"issueDate,omitempty"`
	ExpirationDate string   `json:"expirationDate,omitempty"`
	CredentialID   string   `json:"credentialId,omitempty"`
	URL            string   `json:"url,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// ResumeData is the editable document content, pre-persistence.
type ResumeData struct {
	PersonalDetails PersonalDetails  `json:"personalDetails"`
	WorkExperience  []WorkExperience `json:"workExperience"`
	Education       []Education      `json:"education"`
	Skills          Skills           `json:"skills"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
}

// Resume is the persisted record: ResumeData plus server-assigned identity
// and sharing metadata. ID and ShareID are assigned at creation and never
// change afterwards.
type Resume struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Template string `json:"template"`
	ResumeData
	IsPublic  bool      `json:"isPublic"`
	ShareID   string    `json:"shareId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateResume carries a partial update. Nil fields are left untouched by
// the merge; ShareID is deliberately absent.
type UpdateResume struct {
	Title           *string           `json:"title,omitempty"`
	Template        *string           `json:"template,omitempty"`
	PersonalDetails *PersonalDetails  `json:"personalDetails,omitempty"`
	WorkExperience  *[]WorkExperience `json:"workExperience,omitempty"`
	Education       *[]Education      `json:"education,omitempty"`
	Skills          *Skills           `json:"skills,omitempty"`
	Projects        *[]Project        `json:"projects,omitempty"`
	Certifications  *[]Certification  `json:"certifications,omitempty"`
	IsPublic        *bool             `json:"isPublic,omitempty"`
}

// HasContent reports whether the document holds anything worth persisting.
// An empty draft (no name, no email, no experience, no education) is never
// auto-saved.
func (d ResumeData) HasContent() bool {
	return d.PersonalDetails.FullName != "" ||
		d.PersonalDetails.Email != "" ||
		len(d.WorkExperience) > 0 ||
		len(d.Education) > 0
}

// Normalize fills in the document's structural defaults: section
// collections that arrived as nil become empty so the document always
// serializes with concrete arrays, and entries marked current carry no end
// date.
func (d *ResumeData) Normalize() {
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Skills.Technical == nil {
		d.Skills.Technical = []string{}
	}
	if d.Skills.Soft == nil {
		d.Skills.Soft = []string{}
	}
	if d.Skills.Languages == nil {
		d.Skills.Languages = []LanguageSkill{}
	}
	for i := range d.WorkExperience {
		if d.WorkExperience[i].Achievements == nil {
			d.WorkExperience[i].Achievements = []string{}
		}
		if d.WorkExperience[i].Current {
			d.WorkExperience[i].EndDate = ""
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
		if d.Projects[i].Current {
			d.Projects[i].EndDate = ""
		}
	}
}
