// Package registration implements the user registration screen: the field
// rule table and the submission controller that saves a valid form through a
// UserStore.
//
// A controller is either idle or submitting. Submit on an invalid form shows
// the aggregated field messages and stays idle. Submit on a valid form builds
// a UserRecord, hands it to the store and reports the outcome through the
// AlertPresenter. Only a successful save navigates away from the screen.
//
//	ctrl := registration.NewController(registration.NewForm(), store, alerts, nav,
//		registration.WithLogger(log),
//	)
//	_ = ctrl.Form().SetField(registration.FieldName, "Maria")
//	outcome, err := ctrl.Submit(ctx)
package registration
