// Package domain contains the core fitness entities, closed enumerations and
// errors of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// Entities are plain value records. Optional measurements are pointers so
// that "absent" (not tracked) stays distinct from zero.
package domain
