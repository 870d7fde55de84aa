// Package services holds domain services that span more than one aggregate.
//
// AuthorizationPolicy is the rule table behind every data operation. It maps
// (resource, action, role) to a Scope:
//
//	resource   action  ADMIN     WORKER
//	order      create  business  -
//	order      list    business  own-or-unassigned
//	order      update  business  claim-or-progress
//	product    create  own       own
//	product    list    business  own
//	product    update  business  own
//	product    delete  business  own
//	worker     create  business  -
//	worker     list    business  -
//	dashboard  view    business  -
//
// Rows of another business are reported as not found, never as forbidden.
package services
