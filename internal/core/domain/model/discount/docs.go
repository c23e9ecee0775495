// Package discount contains the discount Code aggregate: a named,
// fixed-value voucher that expires at a date and can be redeemed once.
package discount
