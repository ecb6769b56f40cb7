package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"calculator-service/internal/calculator"
	"calculator-service/internal/config"
	"calculator-service/internal/dispatcher"
	"calculator-service/internal/observability"
)

func main() {
	var (
		a       = flag.Float64("a", 0, "first operand")
		b       = flag.Float64("b", 0, "second operand")
		op      = flag.String("op", "", "operation: add, subtract, multiply, divide (or + - * /); empty runs the demo")
		fanOut  = flag.Int("n", 5, "number of concurrent requests in the demo fan-out")
		logJSON = flag.Bool("log", false, "write service logs to stderr")
	)
	flag.Parse()

	if err := run(*a, *b, *op, *fanOut, *logJSON); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(a, b float64, op string, fanOut int, logJSON bool) error {
	if logJSON {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := observability.InitLogger(cfg.LogLevel); err != nil {
			return err
		}
		defer observability.SyncLogger()
	}

	d := dispatcher.New(calculator.NewService())
	if err := d.Start(); err != nil {
		return err
	}
	defer func() {
		if err := d.Stop(); err != nil {
			observability.Logger.Warn("stopping dispatcher", zap.Error(err))
		}
	}()

	ctx := context.Background()

	if op != "" {
		operation, err := calculator.ParseOperation(op)
		if err != nil {
			return err
		}
		return calculate(ctx, d, calculator.Request{A: a, B: b, Operation: operation})
	}

	return demo(ctx, d, fanOut)
}

// demo sends an addition, a division by zero, and then n multiplications
// concurrently.
func demo(ctx context.Context, d *dispatcher.Dispatcher, n int) error {
	if err := calculate(ctx, d, calculator.Request{A: 10.5, B: 20.7, Operation: calculator.OperationAdd}); err != nil {
		return err
	}
	if err := calculate(ctx, d, calculator.Request{A: 10, B: 0, Operation: calculator.OperationDivide}); err != nil {
		return err
	}

	results := make([]calculator.Response, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			resp, err := d.Calculate(gctx, calculator.Request{
				A:         float64(i),
				B:         2,
				Operation: calculator.OperationMultiply,
			})
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, resp := range results {
		fmt.Printf("%d * 2 = %s\n", i, format(resp))
	}
	return nil
}

func calculate(ctx context.Context, d *dispatcher.Dispatcher, req calculator.Request) error {
	resp, err := d.Calculate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("%g %s %g = %s\n", req.A, symbol(req.Operation), req.B, format(resp))
	return nil
}

func format(resp calculator.Response) string {
	if resp.Failed() {
		return "Error: " + resp.Error
	}
	return fmt.Sprintf("Result: %g", resp.Result)
}

func symbol(op calculator.Operation) string {
	switch op {
	case calculator.OperationAdd:
		return "+"
	case calculator.OperationSubtract:
		return "-"
	case calculator.OperationMultiply:
		return "*"
	case calculator.OperationDivide:
		return "/"
	}
	return op.String()
}
