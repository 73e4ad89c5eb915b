/*
Package fastboy drives a clocked hardware simulation model through its pins.

A Device exposes a clock pin, a reset pin, an evaluation step and three
outputs: program counter, register output and debug instruction. This package
provides the clock driver shared by every harness (Pulse and Reset) and a
throughput benchmark that measures how many simulated clock cycles per second
a device achieves:

	core, err := cpu.New(cpu.Config{})
	if err != nil {
		return err
	}
	defer core.Dispose()

	fastboy.Reset(core)
	r := fastboy.RunBenchmark(core, fastboy.DefaultCycles)
	r.Report(os.Stdout)

The interactive console lives in package session, the reference device in
package cpu.
*/
package fastboy
