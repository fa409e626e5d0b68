package models

import "time"

type ResourceLimitInput struct {
	// ResourceName is the entity to be limited, e.g. a clinic id.
	ResourceName string
	// LimiterGroupName namespaces the limiter key, e.g. ai-analysis.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC is optional; zero means time.Now().UTC().
	NowUTC time.Time
}

type ResourceLimitOutput struct {
	Allowed        bool
	RetryAfterSecs int
}
