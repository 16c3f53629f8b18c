// Command isoskema decodes and validates ISO 20022 and FedNow messages.
//
// Usage:
//
//	# Validate files or directories of messages
//	isoskema validate inbox/*.xml
//
//	# Machine-readable report, forcing the message type
//	isoskema validate --message fednow.publickeys --format json keys.json
//
//	# Validate messages as they arrive
//	isoskema watch /var/spool/iso/inbox --pattern '*.xml'
//
//	# Print the facets of every known data type as JSON Schema
//	isoskema facets --format yaml
package main

func main() {
	Execute()
}
