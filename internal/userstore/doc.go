// Package userstore provides registration.UserStore implementations backed
// by process memory, PostgreSQL and Redis.
//
// Every backend normalizes the national ID to its digits, keys e-mail
// uniqueness on the case-folded address and keeps only a bcrypt hash of the
// password. Save reports a duplicate as (false, nil) and a password bcrypt
// refuses to hash as registration.ErrSaveRejected.
package userstore
