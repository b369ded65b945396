// Package resilience provides fault tolerance patterns for calls to the
// language-model providers used by the agent.
//
// News API queries deliberately bypass this package: a failed query is logged
// and skipped by the aggregator.
//
//	cb := circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
//	out, err := circuitbreaker.Run(cb, func() (string, error) {
//	    var s string
//	    err := retry.WithBackoff(ctx, retry.AgentConfig(), func() error {
//	        var err error
//	        s, err = callModel(ctx)
//	        return err
//	    })
//	    return s, err
//	})
package resilience
