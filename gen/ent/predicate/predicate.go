// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// EmailMessage is the predicate function for emailmessage builders.
type EmailMessage func(*sql.Selector)

// LearnedRule is the predicate function for learnedrule builders.
type LearnedRule func(*sql.Selector)

// SenderProfile is the predicate function for senderprofile builders.
type SenderProfile func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// ThreadPattern is the predicate function for threadpattern builders.
type ThreadPattern func(*sql.Selector)
