package awp5

import (
	"strconv"
	"time"
)

// Statuses reported by JobStatus.
const (
	JobStatusStarted    = "started"
	JobStatusStopped    = "stopped"
	JobStatusUnknown    = "unknown"
	JobStatusScheduled  = "scheduled"
	JobStatusPending    = "pending"
	JobStatusRunning    = "running"
	JobStatusCanceled   = "canceled"
	JobStatusCompleted  = "completed"
	JobStatusTerminated = "terminated"
)

// Completion codes of a finished job. Success covers the job as a whole;
// per-file results live in the job protocol.
const (
	JobCompletionSuccess   = "success"
	JobCompletionException = "exception"
	JobCompletionFailure   = "failure"
)

// Labels reported by JobLabel.
const (
	JobLabelArchive     = "Archive"
	JobLabelBackup      = "Backup"
	JobLabelSynchronize = "Synchronize"
	JobLabelSystem      = "System"
)

// JobNames lists all currently scheduled or running jobs.
func JobNames(c *Connection) ([]string, error) {
	return execNames(c, "Job", "names")
}

// JobCompleted lists jobs completed during the last lastDays days; zero
// means today.
func JobCompleted(c *Connection, lastDays int) ([]string, error) {
	return execNames(c, "Job", "completed", lastDaysArg(lastDays))
}

// JobFailed lists jobs that failed during the last lastDays days; zero
// means today.
func JobFailed(c *Connection, lastDays int) ([]string, error) {
	return execNames(c, "Job", "failed", lastDaysArg(lastDays))
}

// JobWarning lists jobs that ended with warnings during the last
// lastDays days; zero means today.
func JobWarning(c *Connection, lastDays int) ([]string, error) {
	return execNames(c, "Job", "warning", lastDaysArg(lastDays))
}

// JobPending lists jobs waiting in the queue for a worker thread.
func JobPending(c *Connection) ([]string, error) {
	return execNames(c, "Job", "pending")
}

// JobRunning lists all currently running jobs.
func JobRunning(c *Connection) ([]string, error) {
	return execNames(c, "Job", "running")
}

// JobCompletion returns the completion code of a finished job, one of
// the JobCompletion constants.
func JobCompletion(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "completion")
}

// JobDescribe returns the job description shown in the P5 job monitor.
func JobDescribe(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "describe")
}

// JobLabel returns the job label, one of the JobLabel constants.
func JobLabel(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "label")
}

// JobProtocol returns the completion protocol of a finished job, or of
// one archived/restored file when archiveEntry is non-empty.
func JobProtocol(c *Connection, name, archiveEntry string) (string, error) {
	return execText(c, "Job", name, "protocol", archiveEntry)
}

// JobReport returns the live report of a running job.
func JobReport(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "report")
}

// JobResourceGroup returns the resource group the job ran for, e.g.
// "ArchivePlan".
func JobResourceGroup(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "resourcegroup")
}

// JobResourceName returns the resource the job ran for, e.g.
// "Default-Archive".
func JobResourceName(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "resourcename")
}

// JobStatus returns the job status, one of the JobStatus constants.
func JobStatus(c *Connection, name string) (string, error) {
	return execText(c, "Job", name, "status")
}

// JobRunAt returns the time the job was scheduled to run.
func JobRunAt(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Job", name, "runat")
}

// JobXMLTicket returns the completion protocol wrapped in XML sections,
// rerouted to outputFile when non-empty.
func JobXMLTicket(c *Connection, name, outputFile string) (string, error) {
	return execText(c, "Job", name, "xmlticket", outputFile)
}

// JobInventory writes the list of files saved by an archive job to
// outputFile ([client:]absolute_path). Additional attributes (ppath,
// volumes, size, handle, btime, mtime, ino or meta-data fields) select
// the tab-separated columns.
func JobInventory(c *Connection, name, outputFile string, attributes ...string) (string, error) {
	return execText(c, append([]string{"Job", name, "inventory", outputFile}, attributes...)...)
}

// JobCancel cancels a running job. Cancelling a job in any other status
// is an error.
func JobCancel(c *Connection, name string) (bool, error) {
	return execBool(c, "Job", name, "cancel")
}

// JobStop stops a scheduled job. Stopping a job in any other status is
// an error.
func JobStop(c *Connection, name string) (bool, error) {
	return execBool(c, "Job", name, "stop")
}

func lastDaysArg(lastDays int) string {
	if lastDays <= 0 {
		return ""
	}
	return strconv.Itoa(lastDays)
}

// Job addresses one job record by name.
type Job struct {
	resource
}

func NewJob(c *Connection, name string) Job {
	return Job{resource{c, name}}
}

func (j Job) Completion() (string, error) {
	return JobCompletion(j.conn, j.name)
}

func (j Job) Describe() (string, error) {
	return JobDescribe(j.conn, j.name)
}

func (j Job) Label() (string, error) {
	return JobLabel(j.conn, j.name)
}

func (j Job) Protocol(archiveEntry string) (string, error) {
	return JobProtocol(j.conn, j.name, archiveEntry)
}

func (j Job) Report() (string, error) {
	return JobReport(j.conn, j.name)
}

func (j Job) ResourceGroup() (string, error) {
	return JobResourceGroup(j.conn, j.name)
}

func (j Job) ResourceName() (string, error) {
	return JobResourceName(j.conn, j.name)
}

func (j Job) Status() (string, error) {
	return JobStatus(j.conn, j.name)
}

func (j Job) RunAt() (time.Time, error) {
	return JobRunAt(j.conn, j.name)
}

func (j Job) XMLTicket(outputFile string) (string, error) {
	return JobXMLTicket(j.conn, j.name, outputFile)
}

func (j Job) Inventory(outputFile string, attributes ...string) (string, error) {
	return JobInventory(j.conn, j.name, outputFile, attributes...)
}

func (j Job) Cancel() (bool, error) {
	return JobCancel(j.conn, j.name)
}

func (j Job) Stop() (bool, error) {
	return JobStop(j.conn, j.name)
}
