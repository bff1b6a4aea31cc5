// Package alerts implements the rule evaluation engine and webhook delivery
// for fitlevel alerting. Rules are evaluated against each newly computed
// level record; webhooks are delivered to Teams, Slack, or generic HTTP
// targets.
package alerts
