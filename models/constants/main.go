package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the GenoInsight engine
	and it's associated services.
*/
type AncestryCode string
type DisclaimerId string
type FindingKind string

type RiskCategory int
