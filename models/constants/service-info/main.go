package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "GenoInsight Evidence Engine"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the GenoInsight evidence aggregation and validation engine!"
	SERVICE_DESCRIPTION ServiceInfo = "Polygenic scoring, panel consistency validation and provenance service for GenoInsight reports."
	SERVICE_CONTACT     ServiceInfo = "mailto:support@genoinsight.example.org"

	SERVICE_ARTIFACT    ServiceInfo = "genoinsight-engine"
	SERVICE_VERSION     ServiceInfo = "3.2.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.genoinsight:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
