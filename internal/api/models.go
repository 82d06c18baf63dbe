package api

import "time"

// MemoryCategory classifies what kind of knowledge a memory captures
type MemoryCategory string

const (
	CategoryDecision     MemoryCategory = "DECISION"
	CategoryPattern      MemoryCategory = "PATTERN"
	CategoryAntipattern  MemoryCategory = "ANTIPATTERN"
	CategoryDomain       MemoryCategory = "DOMAIN"
	CategoryBug          MemoryCategory = "BUG"
	CategoryOptimization MemoryCategory = "OPTIMIZATION"
	CategoryIntegration  MemoryCategory = "INTEGRATION"
)

// ImportanceLevel ranks how strongly a memory should be surfaced
type ImportanceLevel string

const (
	ImportanceCritical  ImportanceLevel = "CRITICAL"
	ImportanceImportant ImportanceLevel = "IMPORTANT"
	ImportanceMinor     ImportanceLevel = "MINOR"
)

// Memory is a stored unit of knowledge
type Memory struct {
	ID             string          `json:"id" validate:"required"`
	TenantID       string          `json:"tenantId,omitempty"`
	Content        string          `json:"content" validate:"required"`
	Summary        string          `json:"summary"`
	Category       MemoryCategory  `json:"category"`
	Importance     ImportanceLevel `json:"importance"`
	Tags           []string        `json:"tags,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
	AccessCount    int             `json:"accessCount,omitempty"`
	InjectionCount int             `json:"injectionCount,omitempty"`
	HelpfulCount   int             `json:"helpfulCount,omitempty"`
}

// CreateMemoryRequest is the body for creating a memory
type CreateMemoryRequest struct {
	Content    string          `json:"content"`
	Summary    string          `json:"summary"`
	Category   MemoryCategory  `json:"category,omitempty"`
	Importance ImportanceLevel `json:"importance,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// UpdateMemoryRequest is the body for a partial memory update
type UpdateMemoryRequest struct {
	Content    string          `json:"content,omitempty"`
	Summary    string          `json:"summary,omitempty"`
	Category   MemoryCategory  `json:"category,omitempty"`
	Importance ImportanceLevel `json:"importance,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// MemoryList is a page of memories
type MemoryList struct {
	Memories   []Memory `json:"memories"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Size       int      `json:"size"`
	TotalPages int      `json:"totalPages"`
}

// Relationship links two memories in the knowledge graph
type Relationship struct {
	ID           string  `json:"id" validate:"required"`
	FromMemoryID string  `json:"fromMemoryId"`
	ToMemoryID   string  `json:"toMemoryId"`
	Type         string  `json:"type"`
	Strength     float64 `json:"strength,omitempty"`
}

// CreateRelationshipRequest is the body for linking two memories
type CreateRelationshipRequest struct {
	FromMemoryID string  `json:"fromMemoryId"`
	ToMemoryID   string  `json:"toMemoryId"`
	Type         string  `json:"type"`
	Strength     float64 `json:"strength,omitempty"`
}

// Tenant is a customer/organization scope
type Tenant struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	MaxMemories int       `json:"maxMemories,omitempty"`
	MaxUsers    int       `json:"maxUsers,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTenantRequest is the body for creating a tenant
type CreateTenantRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// User is a backend user account
type User struct {
	ID          string     `json:"id" validate:"required"`
	Email       string     `json:"email" validate:"required"`
	Name        string     `json:"name,omitempty"`
	TenantID    string     `json:"tenantId,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// CreateUserRequest is the body for creating a user
type CreateUserRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name,omitempty"`
	Password string   `json:"password"`
	TenantID string   `json:"tenantId,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// AuditLog records one decision/event on the backend
type AuditLog struct {
	ID           string    `json:"id" validate:"required"`
	EventType    string    `json:"eventType"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"userId,omitempty"`
	SessionID    string    `json:"sessionId,omitempty"`
	Outcome      string    `json:"outcome,omitempty"`
	LatencyMs    int       `json:"latencyMs,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// AuditLogList is a page of audit logs
type AuditLogList struct {
	Logs       []AuditLog `json:"logs"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
	TotalPages int        `json:"totalPages"`
}

// Stats is the dashboard overview
type Stats struct {
	TotalMemories      int64            `json:"totalMemories"`
	ByCategory         map[string]int64 `json:"byCategory,omitempty"`
	ByImportance       map[string]int64 `json:"byImportance,omitempty"`
	AvgInjectionRate   float64          `json:"avgInjectionRate"`
	AvgHelpfulnessRate float64          `json:"avgHelpfulnessRate"`
}

// Health is the backend health check response
type Health struct {
	Status    string `json:"status" validate:"required"`
	Timestamp string `json:"timestamp,omitempty"`
}
