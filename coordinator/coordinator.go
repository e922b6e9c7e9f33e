// Package coordinator fans one render out across remote workers. The image
// is cut into row-span tasks; workers pull tasks over rpc, evaluate escape
// outcomes with the shared kernel, and return them here to be classified
// into the final buffer and written to disk.
package coordinator

import (
	"errors"
	"sync"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/picture"
	"ParallelMandelbrot/rpc"
	"ParallelMandelbrot/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Coordinator struct {
	buffer             []mandelbrot.Color
	classifier         mandelbrot.Classifier
	clients            map[string]*rpc.TcpClient
	done               chan struct{}
	logger             bslogger.Logger
	mutex              sync.Mutex
	parameters         task.Parameters
	rowsDone           uint
	settings           settings
	taskCount          uint
	taskGeneratedCount uint
	taskIngestedCount  uint
	tasksDone          chan task.Task
	tasksHandedOut     map[string]map[uint]task.Task
	tasksRequeued      chan task.Task
	tasksTodo          chan task.Task
	workerWait         *sync.WaitGroup

	Server rpc.TcpServer
}

func NewCoordinator(settingsFile string) *Coordinator {
	settings := NewSettings(settingsFile)
	renderSettings := settings.RenderSettings()

	coordinator := &Coordinator{
		classifier:     mandelbrot.Grayscale,
		clients:        make(map[string]*rpc.TcpClient),
		done:           make(chan struct{}),
		logger:         bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		parameters:     task.ParametersFromSettings(renderSettings),
		settings:       settings,
		tasksDone:      make(chan task.Task, 1000),
		tasksHandedOut: make(map[string]map[uint]task.Task),
		tasksRequeued:  make(chan task.Task, 1000),
		tasksTodo:      make(chan task.Task, 1000),
		workerWait:     &sync.WaitGroup{},
	}
	misc.CheckError(renderSettings.Viewport.Validate(), coordinator.logger, misc.Fatal)
	coordinator.buffer = make([]mandelbrot.Color, settings.Width*settings.Height)

	// One task per RowsPerTask rows, rounded up, so the coordinator knows
	// when every task has come back and it can shut down.
	coordinator.taskCount = settings.Height / settings.RowsPerTask
	if settings.Height%settings.RowsPerTask != 0 {
		coordinator.taskCount++
	}

	// Start up the rpc tcp server to allow workers to communicate with the coordinator
	coordinator.Server = rpc.NewTcpServer(coordinator, settings.ServerAddress, "CoordinatorServer")
	misc.CheckError(coordinator.Server.Run(), coordinator.logger, misc.Fatal)

	go coordinator.tickers()
	go coordinator.generateTasks()
	go coordinator.ingestTasks()

	return coordinator
}

// Wait blocks until the render has been assembled and persisted and every
// worker has deregistered.
func (c *Coordinator) Wait() {
	<-c.done
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)
	defer rollCall.Stop()
	defer heartBeat.Stop()

	for {
		select {
		case <-c.done:
			return

		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			c.mutex.Lock()
			clients := make(map[string]*rpc.TcpClient, len(c.clients))
			for k, v := range c.clients {
				clients[k] = v
			}
			c.mutex.Unlock()
			for _, v := range clients {
				var reply bool
				err := v.Call("Worker.RollCall", junk, &reply)
				if err != nil {
					// Cannot communicate with the worker
					c.logger.Warningf("Worker %s missed roll call: %s", v.Name, err)
					var nothing misc.Nothing
					misc.CheckError(c.DeRegisterWorker(v.Name, &nothing), c.logger, misc.Warning)
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.logger.Infof("Tasks [Generated: %d] [Ingested: %d] [Todo: %d] | Rows [Done: %d/%d]",
				c.taskGeneratedCount, c.taskIngestedCount, c.taskCount-c.taskIngestedCount, c.rowsDone, c.settings.Height)
		}
	}
}

func (c *Coordinator) generateTasks() {
	c.logger.Info("Generating tasks")
	startTime := time.Now()

	for firstRow := uint(0); firstRow < c.settings.Height; firstRow += c.settings.RowsPerTask {
		rowCount := c.settings.RowsPerTask
		if firstRow+rowCount > c.settings.Height {
			rowCount = c.settings.Height - firstRow
		}

		taskTodo := task.NewTask(c.taskGeneratedCount)
		taskTodo.AddSpansForRows(firstRow, rowCount)
		c.tasksTodo <- taskTodo
		c.taskGeneratedCount++
	}

	close(c.tasksTodo)
	c.logger.Debugf("Done generating %d tasks in %s", c.taskGeneratedCount, time.Since(startTime))
}

func (c *Coordinator) ingestTasks() {
	c.logger.Info("Ingesting tasks")
	startTime := time.Now()

	for c.taskIngestedCount < c.taskCount {
		taskReceived := <-c.tasksDone
		c.taskIngestedCount++

		for r := 0; r < len(taskReceived.Results); r++ {
			result := taskReceived.Results[r]
			for column, outcome := range result.Outcomes {
				c.buffer[result.Row*c.settings.Width+uint(column)] = c.classifier(outcome)
			}
			c.rowsDone++
		}

		c.mutex.Lock()
		if handedOut, ok := c.tasksHandedOut[taskReceived.WorkerAddress]; ok {
			delete(handedOut, taskReceived.ID)
		}
		c.mutex.Unlock()
	}

	close(c.tasksDone)
	c.logger.Debugf("Done ingesting %d tasks in %s", c.taskIngestedCount, time.Since(startTime))

	err := picture.SavePNG(c.settings.OutputFile, c.buffer, c.settings.Width, c.settings.Height)
	misc.CheckError(err, c.logger, misc.Error)
	if err == nil {
		c.logger.Infof("Saved image to %s", c.settings.OutputFile)
	}

	c.logger.Infof("Waiting for %d workers to disconnect", len(c.clients))
	c.workerWait.Wait()
	misc.CheckError(c.Server.Stop(), c.logger, misc.Warning)
	close(c.done)
}

func (c *Coordinator) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Create a client to communicate with this worker
	client := rpc.NewTcpClient(workerServerAddress, workerServerAddress)
	misc.CheckError(client.Connect(), c.logger, misc.Warning)

	c.mutex.Lock()
	c.clients[workerServerAddress] = &client
	// Track all tasks this worker checks out
	c.tasksHandedOut[workerServerAddress] = make(map[uint]task.Task)
	c.mutex.Unlock()

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	c.workerWait.Add(1)

	return nil
}

func (c *Coordinator) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	c.mutex.Lock()
	handedOut := c.tasksHandedOut[workerServerAddress]
	client := c.clients[workerServerAddress]
	delete(c.tasksHandedOut, workerServerAddress)
	delete(c.clients, workerServerAddress)
	c.mutex.Unlock()

	// Put tasks this worker has not returned yet back into the pool so
	// another worker can pick them up
	go func(tasks map[uint]task.Task) {
		for _, v := range tasks {
			v.CurrentSpan = 0
			v.Results = nil
			v.WorkerAddress = ""
			c.tasksRequeued <- v
		}
	}(handedOut)

	if client != nil {
		misc.CheckError(client.Disconnect(), c.logger, misc.Warning)
	}

	c.logger.Infof("Worker left: %s", workerServerAddress)
	c.workerWait.Done()

	return nil
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

func (c *Coordinator) GetParameters(nothing misc.Nothing, parameters *task.Parameters) error {
	*parameters = c.parameters
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, reply *task.Task) error {
	// Requeued tasks from lost workers take priority over fresh ones
	var todo task.Task
	var more bool
	select {
	case todo, more = <-c.tasksRequeued:
	default:
		todo, more = <-c.tasksTodo
	}
	if !more {
		c.logger.Info("Telling worker that all tasks are handed out")
		return errors.New("all tasks handed out")
	}
	c.mutex.Lock()
	todo.WorkerAddress = workerAddress
	if handedOut, ok := c.tasksHandedOut[workerAddress]; ok {
		handedOut[todo.ID] = todo
	}
	c.mutex.Unlock()
	*reply = todo
	return nil
}

func (c *Coordinator) ReturnTask(done task.Task, nothing *misc.Nothing) error {
	c.tasksDone <- done
	return nil
}
