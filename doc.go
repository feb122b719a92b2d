/*
Command timecorr downloads and queries the USNO time correction tables.

Contents

  Program overview
  Command line usage
  Configuring file locations
  File formats


Program overview

Two tables are maintained, both published at
https://maia.usno.navy.mil/ser7/.

tai-utc.dat lists the dates at which TAI-UTC changed, that is, the leap
seconds.  Timecorr gives the value of TAI-UTC in effect at a Julian date.
The value holds from the date of its line until the date of the next line.
If a date precedes the first line, there is no correction.  The rate terms
on lines before 1972 are not applied.

finals.daily.extended lists daily Earth orientation parameters, observed
and predicted.  Timecorr gives UT1-UTC for a modified Julian date.  The MJD
must be an integer day present in the file.  There is no interpolation,
and a fractional MJD never matches.

Sample run:

  timecorr --download-table both
  timecorr --show-leap 2441400.0
  Leap Seconds at '2441400': '10'[s]
  timecorr --show-time 59714
  Time correction at '59714': '-0.0123'[s]

Tables are read fresh on each run.  A table is only replaced by
downloading it again.  The old copy is deleted first, so if the download
fails there is no copy.


Command line usage

  timecorr [options]

Options:

  -t, --download-table leap|time|both
        --show-leap <JD>
        --show-time <MJD>
        --preview
        --at <time>
  -c, --config <config-file>
  -d, --dir <path>
        --base-url <url>
        --log-level debug|info|warn|error

Options given together run in the order download, show-leap, show-time,
preview, at.  If a table needed by an option has not been downloaded,
timecorr says so and does nothing further.  A failed download does not stop
the remaining options, but timecorr exits with a non-zero status.

Preview shows the first five lines of each table as parsed.  Both tables
must be present.

At takes a UTC time in RFC 3339 format or a date as YYYY-MM-DD and shows
JD, MJD of the day, TAI-UTC, GPS-UTC, and UT1-UTC of the day.


Configuring file locations

By default tables are kept in the directory "tables" under the current
directory, which is created on the first download.  The location can be
set with -d, with the environment variable TIMECORR_DIR, or in a config
file.

The config file is YAML with these keys, all optional:

  dir: tables
  base-url: https://maia.usno.navy.mil/ser7/
  log-level: info

The default config file is timecorr.yaml in the current directory.  It is
fine for it to be missing.  A config file named with -c is required to be
present.  Command line options override environment variables
(TIMECORR_DIR, TIMECORR_BASE_URL, TIMECORR_LOG_LEVEL), which override the
config file.


File formats

Both tables are fixed column text.  For tai-utc.dat, columns 18-26 hold the
Julian date and columns 39-48 hold TAI-UTC in seconds.  Every line must
parse and lines must be in chronological order.  Otherwise the run fails
with a message naming the line.

For finals.daily.extended, columns 8-12 hold the integer MJD, column 58
holds the I or P flag for observed or predicted, and columns 59-68 hold
UT1-UTC in seconds.  Lines that do not parse are ignored.  With
--log-level debug, the number of ignored lines is logged.
*/
package main
