package store

import (
	"context"
	"errors"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Roles() Roles
	Accounts() Accounts
	Invitations() Invitations
	Projects() Projects
	Skills() Skills
	About() About
	Experiences() Experiences
	Educations() Educations
	Testimonials() Testimonials
	SocialLinks() SocialLinks
	Settings() Settings
	Services() Services
	Contacts() Contacts
	Analytics() Analytics

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step atomic operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName fetches a role by its name (used by seeding and
	// provisioning).
	GetRoleByName(ctx context.Context, name domain.RoleName) (domain.Role, error)

	// ListRoles returns all non-deleted roles.
	ListRoles(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is provided by app via ULID).
	CreateRole(ctx context.Context, r domain.Role) error

	// UpdateRoleDefinition overwrites description and permissions, bumping
	// updated_at. Used by the idempotent seed operation.
	UpdateRoleDefinition(ctx context.Context, id, description string, perms []domain.Permission) error
}

type Accounts interface {
	// GetAccountByID returns an account (with role joined) by id.
	GetAccountByID(ctx context.Context, id string) (domain.AdminAccount, error)

	// GetAccountBySubject resolves the external subject identifier.
	GetAccountBySubject(ctx context.Context, subjectID string) (domain.AdminAccount, error)

	// GetAccountByEmail is used during provisioning and invitation issue.
	GetAccountByEmail(ctx context.Context, email string) (domain.AdminAccount, error)

	// CreateAccount inserts a new account. Unique constraints on subject_id
	// and email surface as ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.AdminAccount) error

	// ListAccounts returns all accounts with roles joined, newest first.
	ListAccounts(ctx context.Context) ([]domain.AdminAccount, error)

	// CountAccounts returns the total number of accounts, active or not.
	CountAccounts(ctx context.Context) (int64, error)

	// UpdateProfile applies a partial profile update and bumps updated_at.
	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) error

	// RelinkSubject rebinds an account to a new external subject id,
	// optionally filling a blank display name, and reactivates the account.
	RelinkSubject(ctx context.Context, id, subjectID, displayName string) error

	// SetActive flips the activation flag.
	SetActive(ctx context.Context, id string, active bool) error

	// DeleteAccount removes the account row.
	DeleteAccount(ctx context.Context, id string) error

	// TouchLogin stamps last_login with the current time.
	TouchLogin(ctx context.Context, id string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation. A duplicate invite code
	// surfaces as ErrAlreadyExists so callers can regenerate and retry.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation (role joined) by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByCode looks up the invitation holding the given code.
	GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error)

	// CodeExists reports whether any invitation already holds the code.
	CodeExists(ctx context.Context, code string) (bool, error)

	// ListInvitations returns all invitations, newest first.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)

	// ListInvitationsByInviter returns invitations issued by the given
	// account, newest first.
	ListInvitationsByInviter(ctx context.Context, accountID string) ([]domain.Invitation, error)

	// MarkAccepted transitions a pending invitation to accepted. The guard
	// on the current status makes the transition one-directional; a row
	// that is not pending is reported as ErrNotFound.
	MarkAccepted(ctx context.Context, id, acceptedBy string) error

	// MarkCancelled transitions a pending invitation to cancelled under the
	// same status guard as MarkAccepted.
	MarkCancelled(ctx context.Context, id, cancelledBy string) error

	// CountExpiredPending counts pending invitations whose expiry has
	// passed at the given instant. Rows are never deleted; the count feeds
	// the housekeeping log only.
	CountExpiredPending(ctx context.Context, now time.Time) (int64, error)
}

type Projects interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}

type Skills interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	GetSkillByID(ctx context.Context, id string) (domain.Skill, error)
	CreateSkill(ctx context.Context, s domain.Skill) error
	UpdateSkill(ctx context.Context, s domain.Skill) error
	DeleteSkill(ctx context.Context, id string) error
}

// About is a singleton repository: Get returns the single row (or
// ErrNotFound) and Upsert creates it or overwrites it in place.
type About interface {
	GetAbout(ctx context.Context) (domain.About, error)
	UpsertAbout(ctx context.Context, a domain.About) (domain.About, error)
}

type Experiences interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	GetExperienceByID(ctx context.Context, id string) (domain.Experience, error)
	CreateExperience(ctx context.Context, e domain.Experience) error
	UpdateExperience(ctx context.Context, e domain.Experience) error
	DeleteExperience(ctx context.Context, id string) error
}

type Educations interface {
	ListEducations(ctx context.Context) ([]domain.Education, error)
	GetEducationByID(ctx context.Context, id string) (domain.Education, error)
	CreateEducation(ctx context.Context, e domain.Education) error
	UpdateEducation(ctx context.Context, e domain.Education) error
	DeleteEducation(ctx context.Context, id string) error
}

type Testimonials interface {
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, t domain.Testimonial) error
	UpdateTestimonial(ctx context.Context, t domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}

type SocialLinks interface {
	ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error)
	GetSocialLinkByID(ctx context.Context, id string) (domain.SocialLink, error)
	CreateSocialLink(ctx context.Context, l domain.SocialLink) error
	UpdateSocialLink(ctx context.Context, l domain.SocialLink) error
	DeleteSocialLink(ctx context.Context, id string) error
}

// Settings is a singleton repository like About.
type Settings interface {
	GetSetting(ctx context.Context) (domain.Setting, error)
	UpsertSetting(ctx context.Context, s domain.Setting) (domain.Setting, error)
}

type Services interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id string) (domain.Service, error)
	CreateService(ctx context.Context, s domain.Service) error
	UpdateService(ctx context.Context, s domain.Service) error
	DeleteService(ctx context.Context, id string) error
}

type Contacts interface {
	// CreateContact stores a message submitted through the public form.
	CreateContact(ctx context.Context, c domain.ContactMessage) error

	// ListContacts returns all messages, newest first.
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)

	// DeleteContactsBefore removes messages created before the cut-off and
	// returns how many rows were deleted.
	DeleteContactsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Analytics interface {
	// Summary computes entity totals plus counts of rows created at or
	// after the given cut-off.
	Summary(ctx context.Context, since time.Time) (domain.AnalyticsSummary, error)
}
