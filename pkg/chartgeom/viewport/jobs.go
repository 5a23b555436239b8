package viewport

// Job is a deferred viewport change, such as moving the view to a value.
// Jobs wait in a JobQueue until the chart has dimensions.
type Job struct {
	name string
	run  func()
}

// NewJob returns a job that calls run when executed.
func NewJob(name string, run func()) *Job {
	return &Job{name: name, run: run}
}

// Name returns the job name used in logs.
func (j *Job) Name() string { return j.name }

// Run executes the job.
func (j *Job) Run() {
	if j.run != nil {
		j.run()
	}
}

// JobQueue holds pending viewport jobs in submission order.
type JobQueue struct {
	jobs []*Job
}

// Add appends j to the queue.
func (q *JobQueue) Add(j *Job) {
	q.jobs = append(q.jobs, j)
}

// Remove drops a pending job. It reports whether j was pending.
func (q *JobQueue) Remove(j *Job) bool {
	for i, p := range q.jobs {
		if p == j {
			q.jobs = append(q.jobs[:i], q.jobs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of pending jobs.
func (q *JobQueue) Len() int { return len(q.jobs) }

// Drain runs every pending job in order and empties the queue. Jobs
// queued while draining run in a later Drain.
func (q *JobQueue) Drain() int {
	pending := q.jobs
	q.jobs = nil
	for _, j := range pending {
		j.Run()
	}
	return len(pending)
}
