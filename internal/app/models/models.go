// Package models defines the persisted domain records and their closed
// role/status enumerations.
package models

// Schools is the catalog offered on the registration form.
var Schools = []string{
	"Vallejo High School",
	"Jesse Bethel High School",
	"Hogan High School",
	"St. Patrick-St. Vincent High School",
	"Solano Community College",
	"Napa Valley College",
	"California Maritime Academy",
	"Touro University California",
	"University of California, Berkeley",
	"University of California, Davis",
	"California State University, Sacramento",
	"San Francisco State University",
	"Other",
}
