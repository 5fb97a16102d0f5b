package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errEmailTaken         = "Email already registered"
	errTaskNotFound       = "Task not found"
)
