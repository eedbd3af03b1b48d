package answers

import (
	"fmt"
	"strings"
)

const (
	domainOriginStringConstant      = "origin"
	domainDestinationStringConstant = "destination"
	domainGlobalStringConstant      = "global"
	unknownDomainTemplateConstant   = "unknown(%d)"
	collectionSeparatorConstant     = ","
	gateNegativeShortConstant       = "n"
	gateNegativeLongConstant        = "no"
	gateNegativeNumericConstant     = "0"
)

// Domain identifies which part of the migration a question configures.
type Domain int

// Supported answer domains.
const (
	DomainOrigin Domain = iota
	DomainDestination
	DomainGlobal
)

// String returns the lowercase domain label used in logs.
func (domain Domain) String() string {
	switch domain {
	case DomainOrigin:
		return domainOriginStringConstant
	case DomainDestination:
		return domainDestinationStringConstant
	case DomainGlobal:
		return domainGlobalStringConstant
	default:
		return fmt.Sprintf(unknownDomainTemplateConstant, int(domain))
	}
}

// Key identifies a field within a domain.
type Key string

// Connection and scope keys shared by the origin and destination domains.
const (
	KeyHost       Key = Key("host")
	KeyPort       Key = Key("port")
	KeyUsername   Key = Key("username")
	KeyPassword   Key = Key("password")
	KeyDatabase   Key = Key("db")
	KeyCollection Key = Key("collection")
)

// Global gate keys.
const (
	KeyWillImport Key = Key("willImport")
	KeyKeepBackup Key = Key("keepBackup")
)

var gateNegativeLiterals = map[string]struct{}{
	gateNegativeShortConstant:   {},
	gateNegativeLongConstant:    {},
	gateNegativeNumericConstant: {},
}

// DomainAnswers maps keys of a single domain to raw answers.
type DomainAnswers map[Key]string

// Get returns the raw answer stored for key or an empty string when absent.
func (domainAnswers DomainAnswers) Get(key Key) string {
	if domainAnswers == nil {
		return ""
	}
	return domainAnswers[key]
}

// Trimmed returns the whitespace-trimmed answer stored for key.
func (domainAnswers DomainAnswers) Trimmed(key Key) string {
	return strings.TrimSpace(domainAnswers.Get(key))
}

// AnswerSet accumulates raw operator answers across the three domains.
type AnswerSet struct {
	origin      DomainAnswers
	destination DomainAnswers
	global      DomainAnswers
}

// NewAnswerSet constructs an empty AnswerSet.
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		origin:      DomainAnswers{},
		destination: DomainAnswers{},
		global:      DomainAnswers{},
	}
}

// Record stores the raw answer for key in domain. Empty answers are stored as well.
func (answerSet *AnswerSet) Record(domain Domain, key Key, value string) {
	target := answerSet.mutableDomain(domain)
	if target == nil {
		return
	}
	target[key] = value
}

// Value returns the raw answer for key in domain and whether the question was answered.
func (answerSet AnswerSet) Value(domain Domain, key Key) (string, bool) {
	source := answerSet.domainMapping(domain)
	if source == nil {
		return "", false
	}
	value, answered := source[key]
	return value, answered
}

// Domain returns a copy of the answers recorded for domain.
func (answerSet AnswerSet) Domain(domain Domain) DomainAnswers {
	source := answerSet.domainMapping(domain)
	duplicated := make(DomainAnswers, len(source))
	for key, value := range source {
		duplicated[key] = value
	}
	return duplicated
}

// Origin returns a copy of the origin answers.
func (answerSet AnswerSet) Origin() DomainAnswers {
	return answerSet.Domain(DomainOrigin)
}

// Destination returns a copy of the destination answers.
func (answerSet AnswerSet) Destination() DomainAnswers {
	return answerSet.Domain(DomainDestination)
}

// Global returns a copy of the global answers.
func (answerSet AnswerSet) Global() DomainAnswers {
	return answerSet.Domain(DomainGlobal)
}

// WillImport evaluates the will-import gate.
func (answerSet AnswerSet) WillImport() bool {
	rawAnswer, _ := answerSet.Value(DomainGlobal, KeyWillImport)
	return EvaluateGate(rawAnswer)
}

// KeepBackup evaluates the keep-backup gate.
func (answerSet AnswerSet) KeepBackup() bool {
	rawAnswer, _ := answerSet.Value(DomainGlobal, KeyKeepBackup)
	return EvaluateGate(rawAnswer)
}

func (answerSet *AnswerSet) mutableDomain(domain Domain) DomainAnswers {
	switch domain {
	case DomainOrigin:
		if answerSet.origin == nil {
			answerSet.origin = DomainAnswers{}
		}
		return answerSet.origin
	case DomainDestination:
		if answerSet.destination == nil {
			answerSet.destination = DomainAnswers{}
		}
		return answerSet.destination
	case DomainGlobal:
		if answerSet.global == nil {
			answerSet.global = DomainAnswers{}
		}
		return answerSet.global
	default:
		return nil
	}
}

func (answerSet AnswerSet) domainMapping(domain Domain) DomainAnswers {
	switch domain {
	case DomainOrigin:
		return answerSet.origin
	case DomainDestination:
		return answerSet.destination
	case DomainGlobal:
		return answerSet.global
	default:
		return nil
	}
}

// EvaluateGate applies the default-yes policy: only n, no, and 0 (case-insensitive) are negative.
func EvaluateGate(rawAnswer string) bool {
	normalizedAnswer := strings.ToLower(strings.TrimSpace(rawAnswer))
	_, negative := gateNegativeLiterals[normalizedAnswer]
	return !negative
}

// ParseCollections splits a comma-separated collection scope into trimmed, non-empty names in input order.
func ParseCollections(rawCollections string) []string {
	collections := make([]string, 0)
	for _, candidate := range strings.Split(rawCollections, collectionSeparatorConstant) {
		trimmedCandidate := strings.TrimSpace(candidate)
		if len(trimmedCandidate) == 0 {
			continue
		}
		collections = append(collections, trimmedCandidate)
	}
	return collections
}
