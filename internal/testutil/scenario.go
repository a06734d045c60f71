package testutil

// SuiteScenario is a small workspace: one suite with a setup, a looping test
// calling a user keyword, and a resource file. Breakpoints sit on the suite
// setup and inside the keyword.
const SuiteScenario = `
file "/ws/suite.robot" {
  settings {
    suite_setup   = { line = 2, call = ["Prepare"] }
    test_teardown = { line = 3, call = ["Cleanup"] }
    resources     = ["/ws/res.robot"]
  }

  test "T1" {
    line = 5
    row {
      line  = 6
      cells = ["Log", "hello"]
    }
    row {
      line  = 7
      cells = ["FOR", "$${i}", "IN RANGE", "2"]
    }
    row {
      line  = 8
      cells = ["", "My Kw", "$${i}"]
    }
    row {
      line  = 9
      cells = ["END"]
    }
  }

  keyword "My Kw" {
    line = 20
    row {
      line  = 21
      cells = ["Log", "$${i}"]
    }
  }

  keyword "Prepare" {
    line = 25
    row {
      line  = 26
      cells = ["No Operation"]
    }
  }

  keyword "Cleanup" {
    line = 28
    row {
      line  = 29
      cells = ["No Operation"]
    }
  }
}

file "/ws/res.robot" {
  keyword "Res Kw" {
    line = 3
    row {
      line  = 4
      cells = ["Log", "res"]
    }
  }
}

breakpoint {
  path = "/ws/suite.robot"
  line = 2
}

breakpoint {
  path = "/ws/suite.robot"
  line = 21
}
`

// SuiteEvents replays one run of SuiteScenario.
const SuiteEvents = `
event "suite" {
  name = "Suite"
  path = "/ws/suite.robot"

  event "keyword" {
    name = "Prepare"
    type = "Setup"

    event "keyword" {
      name    = "No Operation"
      library = "BuiltIn"
      type    = "Keyword"
    }
  }

  event "test" {
    name = "T1"

    event "keyword" {
      name    = "Log"
      library = "BuiltIn"
      type    = "Keyword"
    }

    event "keyword" {
      name = "$${i} IN RANGE [ 2 ]"
      type = "For"

      event "keyword" {
        name = "$${i} = 0"
        type = "For Item"

        event "keyword" {
          name = "My Kw"
          type = "Keyword"

          event "keyword" {
            name    = "Log"
            library = "BuiltIn"
            type    = "Keyword"
          }
        }
      }
    }

    event "keyword" {
      name = "Cleanup"
      type = "Teardown"

      event "keyword" {
        name    = "No Operation"
        library = "BuiltIn"
        type    = "Keyword"
      }
    }
  }
}

event "closed" {}
`
