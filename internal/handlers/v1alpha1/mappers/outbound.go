package mappers

import (
	"github.com/kubev2v/vdi-migration-planner/api/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/pkg/version"
)

func InfoToApi(info version.Info) v1alpha1.Info {
	return v1alpha1.Info{
		VersionName: info.GitVersion,
		GitCommit:   info.GitCommit,
	}
}

func ErrorToApi(message string, requestID string) v1alpha1.Error {
	e := v1alpha1.Error{Message: message}
	if requestID != "" {
		e.RequestId = &requestID
	}
	return e
}
