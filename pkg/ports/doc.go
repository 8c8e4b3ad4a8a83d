/*
Package ports defines the interfaces between the rankery core and its
adapters: the catalog store, the flow-context store, the access policy,
and the optional distributed locker.

It also ships reusable contract test suites so every adapter can prove it
honors the same semantics.
*/
package ports
