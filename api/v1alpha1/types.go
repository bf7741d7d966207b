package v1alpha1

// AssessmentRequest is the body of POST /api/v1/assessments.
// Population keys are user type keys such as "task_worker".
type AssessmentRequest struct {
	Population         map[string]int `json:"population" validate:"dive,keys,user_type,endkeys,gte=0,lte=1000000"`
	Complexity         string         `json:"complexity" validate:"required,complexity"`
	CurrentEnvironment string         `json:"currentEnvironment,omitempty" validate:"omitempty,max=128"`
	TargetService      string         `json:"targetService,omitempty" validate:"omitempty,service_name"`
	Timeline           string         `json:"timeline,omitempty" validate:"omitempty,timeline"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
}

// Info is the body of GET /api/v1/info.
type Info struct {
	VersionName string `json:"versionName"`
	GitCommit   string `json:"gitCommit"`
}
