// Package complaint provides the complaint sub-workflow of order fulfillment.
// A complaint is filed against an order at a specific workflow stage,
// optionally pinned to a line item, and routed to one of two manager queues:
// complaints on delivered orders go to the post-delivery queue, everything
// else to the pre-delivery queue.
//
// Resolved and escalated complaints are immutable.
package complaint
