// Package workflow implements the Temporal workflow that answers one test
// question durably.
//
// The workflow runs the three pipeline stages as separate activities:
//
//   - SampleAndVote draws solver samples and votes on the extracted answers
//   - Review accepts or revises the voted draft
//   - Finalize reduces the reviewed draft to a minimal answer
//
// Activities are never retried, so a question costs at most the same number
// of model calls as the in-process pipeline. Workflow code must stay
// deterministic; all I/O happens inside activities.
package workflow
