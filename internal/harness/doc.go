// Package harness runs scripted proof sessions against the verifier.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: identity_proof
//	description: "Derives p->p from K and S"
//	no_default_axioms: false
//	axioms:
//	  - name: I
//	    template: "p->p"
//	steps:
//	  - submit: "p->(q->p)"
//	    expect:
//	      kind: accepted
//	      rule: axiom
//	      axiom: K
//	  - add_axiom: { name: B, template: "(q->r)->((p->q)->(p->r))" }
//	  - remove_axiom: K
//	assertions:
//	  - type: theorem_count
//	    count: 1
//	  - type: store_contains
//	    formula: "p->(q->p)"
//
// # Assertion Types
//
//   - theorem_count: the proof store holds exactly count entries
//   - store_contains: some stored formula is structurally equal to formula
//   - verdict_count: exactly count verdicts have the given kind
//   - export_contains: some export log line contains line
//
// # Deterministic Testing
//
// Every scenario runs on a fresh Verifier with a deterministic logical clock
// (testutil.DeterministicClock) and a fixed session token
// (testutil.FixedSessionGenerator, overridable with the session field). The
// same scenario always yields the same export log, which RunWithGolden
// compares against testdata/golden/<name>.golden.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/identity.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
