package dto

// Response DTOs

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	Secretary *SecretaryResponse     `json:"secretario"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt Timestamp              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
