package domain

import "time"

// Portfolio content entities. Media fields (images, resumes, certificates)
// are plain URLs supplied by the client; this service does not handle file
// uploads.

type Project struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	LinkURL     string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Skill struct {
	ID          string
	Name        string
	Proficiency int // 0-100
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// About is a singleton: at most one row exists and any create while a row
// exists is applied as an update of that row.
type About struct {
	ID         string
	FullName   string
	FirstName  string
	LastName   string
	Title      string
	Summary    string
	Email      string
	Phone      string
	Address    string
	PictureURL string
	ResumeURL  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Experience struct {
	ID          string
	JobTitle    string
	Company     string
	LogoURL     string
	StartDate   time.Time
	EndDate     *time.Time // nil for a current position
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Education struct {
	ID             string
	Degree         string
	Institution    string
	StartDate      time.Time
	EndDate        *time.Time
	LinkURL        string
	CertificateURL string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Testimonial struct {
	ID        string
	Name      string
	Feedback  string
	Company   string
	Position  string
	Rating    int
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SocialLink struct {
	ID        string
	Platform  string
	Icon      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Setting is a singleton like About: site-wide metadata with at most one row.
type Setting struct {
	ID          string
	SiteName    string
	Description string
	Keywords    string
	Author      string
	Email       string
	Phone       string
	Address     string
	Copyright   string
	LogoURL     string
	FaviconURL  string
	SocialURLs  map[string]string // platform name -> profile URL
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Service struct {
	ID          string
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactMessage is a visitor-submitted message from the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
