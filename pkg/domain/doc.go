/*
Package domain contains the core types of the rankery conversation engine:
inbound intents, outbound replies, the catalog entities (lists, items,
ratings) and the flow context that tracks a user's progress through a
multi-step conversation.

The types here are plain data. Behavior lives in the engine
(internal/engine) and in the store adapters (pkg/adapters).
*/
package domain
