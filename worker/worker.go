// Package worker is the remote half of the distributed render: it registers
// with a coordinator, pulls row-span tasks, evaluates them with the shared
// kernel and returns the escape outcomes.
package worker

import (
	"fmt"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/rpc"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Worker struct {
	coordinatorAddress string
	done               chan struct{}
	logger             bslogger.Logger
	myAddress          string
	renderer           mandelbrot.Renderer
	tasksCompleted     int

	Client rpc.TcpClient
	Server rpc.TcpServer
}

func NewWorker(settingsFile string) *Worker {
	settings := NewSettings(settingsFile)
	worker := &Worker{
		coordinatorAddress: settings.CoordinatorAddress,
		done:               make(chan struct{}),
		logger:             bslogger.NewLogger("Worker", bslogger.Normal, nil),
	}

	// Find a free port to use for this worker
	port, err := misc.GetFreePort()
	misc.CheckError(err, worker.logger, misc.Fatal)
	worker.logger.Debugf("Found free port: %d", port)
	worker.myAddress = fmt.Sprintf("%s:%d", misc.GetLocalAddress(), port)
	worker.logger = bslogger.NewLogger(fmt.Sprintf("Worker %s", worker.myAddress), bslogger.Normal, nil)
	worker.Server = rpc.NewTcpServer(worker, worker.myAddress, fmt.Sprintf("WorkerServer %s", worker.myAddress))
	misc.CheckError(worker.Server.Run(), worker.logger, misc.Fatal)

	// Register with the coordinator
	worker.Client = rpc.NewTcpClient(settings.CoordinatorAddress, "CoordinatorClient")
	misc.CheckError(worker.Client.Connect(), worker.logger, misc.Fatal)
	var nothing misc.Nothing
	misc.CheckError(worker.Client.Call("Coordinator.RegisterWorker", worker.myAddress, &nothing), worker.logger, misc.Fatal)

	// Get the render parameters from the coordinator
	var parameters task.Parameters
	misc.CheckError(worker.Client.Call("Coordinator.GetParameters", nothing, &parameters), worker.logger, misc.Fatal)
	worker.renderer, err = mandelbrot.NewRenderer(parameters.Settings())
	misc.CheckError(err, worker.logger, misc.Fatal)

	go worker.tickers()
	go worker.processTasks()

	return worker
}

// Wait blocks until the worker has drained the coordinator's task pool and
// shut down.
func (w *Worker) Wait() {
	<-w.done
}

func (w *Worker) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)
	defer rollCall.Stop()
	defer heartBeat.Stop()

	for {
		select {
		case <-w.done:
			return

		case <-rollCall.C:
			w.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			var reply bool
			err := w.Client.Call("Coordinator.RollCall", junk, &reply)
			if err != nil {
				// Cannot communicate with the coordinator so we should shut down
				w.logger.Warningf("Coordinator missed roll call: %s", err)
				w.Client.Disconnect()
				w.Server.Stop()
				return
			}

		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.logger.Infof("Tasks [Completed: %d]", w.tasksCompleted)
		}
	}
}

func (w *Worker) processTasks() {
	w.logger.Info("Processing tasks")

	var nothing misc.Nothing
	startTime := time.Now()

	for {
		var taskTodo task.Task

		err := w.Client.Call("Coordinator.GetTask", w.myAddress, &taskTodo)
		if err != nil {
			// This is an expected error. No more work to do
			if err.Error() == "all tasks handed out" {
				break
			}
			w.logger.Fatalf("Unable to get a task: %s", err.Error())
		}

		for {
			// Process each span given
			span, err := taskTodo.GetNextSpan()
			if err != nil {
				break
			}

			outcomes, err := w.renderer.EvaluateRow(span.Row)
			if err != nil {
				w.logger.Fatalf("Unable to evaluate row %d: %s", span.Row, err.Error())
			}
			taskTodo.AddResult(task.Result{
				Row:      span.Row,
				Outcomes: outcomes,
			})
		}

		err = w.Client.Call("Coordinator.ReturnTask", taskTodo, &nothing)
		if err != nil {
			w.logger.Errorf("Unable to return a task: %s", err.Error())
			break
		}
		w.tasksCompleted++
	}

	w.logger.Info("Done processing tasks")
	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime))

	w.logger.Info("Shutting down")
	w.Client.Call("Coordinator.DeRegisterWorker", w.myAddress, &nothing)
	misc.CheckError(w.Client.Disconnect(), w.logger, misc.Warning)
	misc.CheckError(w.Server.Stop(), w.logger, misc.Warning)
	close(w.done)
}

func (w *Worker) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
